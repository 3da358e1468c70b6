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

package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/notification/internal/event"
	"github.com/ecodeclub/voltmart/internal/notification/internal/service"
	"github.com/ecodeclub/voltmart/internal/notification/internal/service/email"
	"github.com/ecodeclub/voltmart/internal/notification/ioc"
	"github.com/go-gomail/gomail"
	"github.com/google/wire"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		ioc.InitEmailConfig,
		ioc.InitDialer,
		initEmailService,
		service.NewService,
		event.NewOrderEventConsumer,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initEmailService(d *gomail.Dialer, cfg ioc.EmailConfig) email.Service {
	return email.NewService(d, cfg.From)
}
