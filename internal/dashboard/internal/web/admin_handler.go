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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/dashboard/internal/errs"
	"github.com/ecodeclub/voltmart/internal/dashboard/internal/service"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/dashboard")
	g.POST("/summary", ginx.W(h.Summary))
}

func (h *AdminHandler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	counts := make(map[string]int64, len(summary.CountsByStatus))
	for status, n := range summary.CountsByStatus {
		counts[status.String()] = n
	}
	return ginx.Result{
		Data: SummaryResp{
			RevenueCents:   summary.RevenueCents,
			CountsByStatus: counts,
			LowStock: slice.Map(summary.LowStock, func(idx int, src product.Product) LowStockProduct {
				return LowStockProduct{
					ID:    src.ID,
					SKU:   src.SKU,
					Name:  src.Name,
					Stock: src.Stock,
				}
			}),
			RecentAudit: slice.Map(summary.RecentAudit, func(idx int, src audit.AuditLog) AuditEntry {
				return AuditEntry{
					ID:         src.ID,
					ActorID:    src.ActorID,
					ActorName:  src.ActorName,
					Action:     src.Action,
					TargetType: src.TargetType,
					TargetID:   src.TargetID,
					Ctime:      src.Ctime,
				}
			}),
		},
	}, nil
}

type SummaryResp struct {
	RevenueCents   int64             `json:"revenueCents"`
	CountsByStatus map[string]int64  `json:"countsByStatus"`
	LowStock       []LowStockProduct `json:"lowStock"`
	RecentAudit    []AuditEntry      `json:"recentAudit"`
}

type LowStockProduct struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

type AuditEntry struct {
	ID         int64  `json:"id"`
	ActorID    int64  `json:"actorID"`
	ActorName  string `json:"actorName"`
	Action     string `json:"action"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetID"`
	Ctime      int64  `json:"ctime"`
}
