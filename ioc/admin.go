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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/dashboard"
	"github.com/ecodeclub/voltmart/internal/order"
	"github.com/ecodeclub/voltmart/internal/pkg/middleware"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/ecodeclub/voltmart/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

// InitAdminServer serves the staff console. Everything behind it requires an
// employee or admin session; customers get a 403.
func InitAdminServer(
	productAdminHdl *product.AdminHandler,
	orderAdminHdl *order.AdminHandler,
	auditAdminHdl *audit.AdminHandler,
	dashboardAdminHdl *dashboard.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "voltmart.example")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(user.RoleEmployee, user.RoleAdmin).Build())
	productAdminHdl.PrivateRoutes(res.Engine)
	orderAdminHdl.PrivateRoutes(res.Engine)
	auditAdminHdl.PrivateRoutes(res.Engine)
	dashboardAdminHdl.PrivateRoutes(res.Engine)
	return res
}
