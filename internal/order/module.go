// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package order

import (
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/event"
	"github.com/ecodeclub/voltmart/internal/order/internal/job"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/ecodeclub/voltmart/internal/order/internal/web"
)

type (
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	Status                = domain.OrderStatus
	Service               = service.Service
	Stats                 = service.Stats
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	PaymentEventConsumer  = event.PaymentEventConsumer
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusPending   = domain.StatusPending
	StatusPaid      = domain.StatusPaid
	StatusPreparing = domain.StatusPreparing
	StatusReady     = domain.StatusReady
	StatusPickedUp  = domain.StatusPickedUp
	StatusRefunded  = domain.StatusRefunded
	StatusCancelled = domain.StatusCancelled
)

var (
	ErrOrderNotFound           = service.ErrOrderNotFound
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
	Consumer *PaymentEventConsumer
	CloseJob *CloseExpiredOrdersJob
}
