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

package payment

import (
	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/job"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service"
	"github.com/ecodeclub/voltmart/internal/payment/internal/web"
)

type (
	Payment             = domain.Payment
	Status              = domain.PaymentStatus
	Service             = service.Service
	WebhookHandler      = web.WebhookHandler
	SyncIntentStatusJob = job.SyncIntentStatusJob
)

const (
	StatusInitialized = domain.PaymentStatusInitialized
	StatusSucceeded   = domain.PaymentStatusSucceeded
	StatusFailed      = domain.PaymentStatusFailed
	StatusRefunded    = domain.PaymentStatusRefunded
)

type Module struct {
	Svc        Service
	WebhookHdl *WebhookHandler
	SyncJob    *SyncIntentStatusJob
}
