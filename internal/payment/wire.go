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

//go:build wireinject

package payment

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/payment/internal/event"
	"github.com/ecodeclub/voltmart/internal/payment/internal/event/cache"
	"github.com/ecodeclub/voltmart/internal/payment/internal/repository"
	"github.com/ecodeclub/voltmart/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service/stripe"
	"github.com/ecodeclub/voltmart/internal/payment/internal/web"
	"github.com/ecodeclub/voltmart/internal/payment/ioc"
	"github.com/ecodeclub/voltmart/internal/payment/internal/job"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		ioc.InitStripeConfig,
		ioc.InitIntentAPI,
		stripe.NewIntentService,
		cache.NewProcessedEventCache,
		event.NewPaymentEventProducer,
		repository.NewPaymentRepository,
		service.NewService,
		initWebhookHandler,
		initSyncJob,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initWebhookHandler(svc service.Service, cfg ioc.StripeConfig) *web.WebhookHandler {
	return web.NewWebhookHandler(svc, cfg.WebhookSecret)
}

func initSyncJob(svc service.Service, cfg ioc.StripeConfig) *job.SyncIntentStatusJob {
	return job.NewSyncIntentStatusJob(svc, cfg.SyncMinutes, cfg.SyncLimit)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}
