package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voltmart/internal/audit/internal/domain"
	"github.com/ecodeclub/voltmart/internal/audit/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/audit")
	g.POST("/list", ginx.B[ListAuditLogsReq](h.List))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListAuditLogsReq) (ginx.Result, error) {
	entries, total, err := h.svc.List(ctx.Request.Context(), domain.Filter{
		ActorID:    req.ActorID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Action:     req.Action,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListAuditLogsResp{
			Total: total,
			Entries: slice.Map(entries, func(idx int, src domain.AuditLog) AuditLog {
				return AuditLog{
					ID:         src.ID,
					ActorID:    src.ActorID,
					ActorName:  src.ActorName,
					Action:     src.Action,
					TargetType: src.TargetType,
					TargetID:   src.TargetID,
					Before:     src.Before,
					After:      src.After,
					IP:         src.IP,
					UserAgent:  src.UserAgent,
					Ctime:      src.Ctime,
				}
			}),
		},
	}, nil
}
