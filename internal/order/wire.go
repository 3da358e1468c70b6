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

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/event"
	"github.com/ecodeclub/voltmart/internal/order/internal/job"
	"github.com/ecodeclub/voltmart/internal/order/internal/repository"
	"github.com/ecodeclub/voltmart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/ecodeclub/voltmart/internal/order/internal/web"
	"github.com/ecodeclub/voltmart/internal/payment"
	"github.com/ecodeclub/voltmart/internal/pkg/pickupcode"
	"github.com/ecodeclub/voltmart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	productModule *product.Module,
	paymentModule *payment.Module,
	auditModule *audit.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService,
		service.NewStockMover,
		sequencenumber.NewGenerator,
		pickupcode.NewGenerator,
		event.NewOrderEventProducer,
		event.NewPaymentEventConsumer,
		web.NewHandler,
		web.NewAdminHandler,
		initCloseJob,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.FieldsOf(new(*audit.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initCloseJob(svc service.Service) *job.CloseExpiredOrdersJob {
	type config struct {
		CloseMinutes int64 `yaml:"closeMinutes"`
		CloseLimit   int   `yaml:"closeLimit"`
	}
	var cfg config
	err := econf.UnmarshalKey("order", &cfg)
	if err != nil {
		panic(err)
	}
	return job.NewCloseExpiredOrdersJob(svc, cfg.CloseMinutes, cfg.CloseLimit)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
