//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/dashboard"
	"github.com/ecodeclub/voltmart/internal/notification"
	"github.com/ecodeclub/voltmart/internal/order"
	"github.com/ecodeclub/voltmart/internal/payment"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/ecodeclub/voltmart/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		audit.InitModule,
		user.InitModule,
		product.InitModule,
		payment.InitModule,
		order.InitModule,
		notification.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CloseJob"),
		wire.FieldsOf(new(*payment.Module), "WebhookHdl", "SyncJob"),
		wire.FieldsOf(new(*audit.Module), "AdminHdl"),
		wire.FieldsOf(new(*dashboard.Module), "AdminHdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
