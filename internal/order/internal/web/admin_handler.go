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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/event"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// staffTargets are the transitions the fulfillment console may request.
// Refunded stays provider-driven; Paid is allowed for counter payments that
// never went through the provider.
var staffTargets = map[domain.OrderStatus]struct{}{
	domain.StatusPaid:      {},
	domain.StatusPreparing: {},
	domain.StatusReady:     {},
	domain.StatusPickedUp:  {},
	domain.StatusCancelled: {},
}

type AdminHandler struct {
	svc      service.Service
	stock    *service.StockMover
	auditSvc audit.Service
	producer event.OrderEventProducer
	logger   *elog.Component
}

func NewAdminHandler(svc service.Service,
	stock *service.StockMover,
	auditSvc audit.Service,
	producer event.OrderEventProducer) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		stock:    stock,
		auditSvc: auditSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/queue", ginx.B[ListFulfillmentReq](h.ListFulfillmentQueue))
	g.POST("/detail", ginx.B[AdminOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/status", ginx.BS[UpdateOrderStatusReq](h.UpdateOrderStatus))
}

// ListFulfillmentQueue pages orders oldest first, so staff work the backlog
// in arrival order. No status means the needs-attention view: everything not
// yet out the door.
func (h *AdminHandler) ListFulfillmentQueue(ctx *ginx.Context, req ListFulfillmentReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListByStatus(ctx.Request.Context(), domain.OrderStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) RetrieveOrderDetail(ctx *ginx.Context, req AdminOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// UpdateOrderStatus drives the staff side of the lifecycle. The transition
// table has the final say; a concurrent change surfaces as a conflict.
func (h *AdminHandler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	target := domain.OrderStatus(req.Status)
	if _, ok := staffTargets[target]; !ok {
		return invalidStatusTransitionResult, nil
	}
	order, err := h.svc.FindBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	if target == domain.StatusPaid {
		return h.markPaidManually(ctx, order, sess)
	}
	from, err := h.svc.UpdateStatus(ctx.Request.Context(), order, target, req.PickedUpBy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusTransition) {
			return invalidStatusTransitionResult, nil
		}
		return systemErrorResult, err
	}

	h.auditSvc.Log(ctx.Request.Context(), audit.AuditLog{
		ActorID:    sess.Claims().Uid,
		Action:     "order.status_change",
		TargetType: audit.TargetTypeOrder,
		TargetID:   order.SN,
		Before:     map[string]any{"status": from.String()},
		After:      map[string]any{"status": target.String()},
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.GetHeader("User-Agent"),
	})

	if target == domain.StatusReady {
		evt := event.OrderEvent{
			Kind:       event.OrderEventKindReady,
			OrderSN:    order.SN,
			BuyerID:    order.BuyerID,
			Email:      order.Customer.Email,
			Name:       order.Customer.Name,
			TotalCents: order.TotalCents,
			PickupCode: order.Pickup.Code,
		}
		if er := h.producer.Produce(ctx.Request.Context(), evt); er != nil {
			h.logger.Error("produce order ready event failed",
				elog.String("order_sn", order.SN), elog.FieldErr(er))
		}
	}

	return ginx.Result{
		Data: UpdateOrderStatusResp{
			OrderSN:    order.SN,
			FromStatus: from.ToUint8(),
			ToStatus:   target.ToUint8(),
			Utime:      time.Now().UnixMilli(),
		},
	}, nil
}

// markPaidManually settles a counter payment: the same transition, stock
// movement and confirmation event the webhook path produces, attributed to
// the staff member instead of the provider.
func (h *AdminHandler) markPaidManually(ctx *ginx.Context, order domain.Order, sess session.Session) (ginx.Result, error) {
	changed, err := h.svc.MarkPaid(ctx.Request.Context(), order, "counter")
	if err != nil {
		return systemErrorResult, err
	}
	if !changed {
		return invalidStatusTransitionResult, nil
	}
	h.stock.Decrement(ctx.Request.Context(), order)
	h.auditSvc.Log(ctx.Request.Context(), audit.AuditLog{
		ActorID:    sess.Claims().Uid,
		Action:     "order.paid",
		TargetType: audit.TargetTypeOrder,
		TargetID:   order.SN,
		Before:     map[string]any{"status": domain.StatusPending.String()},
		After:      map[string]any{"status": domain.StatusPaid.String()},
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.GetHeader("User-Agent"),
	})
	evt := event.OrderEvent{
		Kind:       event.OrderEventKindConfirmed,
		OrderSN:    order.SN,
		BuyerID:    order.BuyerID,
		Email:      order.Customer.Email,
		Name:       order.Customer.Name,
		TotalCents: order.TotalCents,
		PickupCode: order.Pickup.Code,
	}
	if er := h.producer.Produce(ctx.Request.Context(), evt); er != nil {
		h.logger.Error("produce order event failed",
			elog.String("order_sn", order.SN), elog.FieldErr(er))
	}
	return ginx.Result{
		Data: UpdateOrderStatusResp{
			OrderSN:    order.SN,
			FromStatus: domain.StatusPending.ToUint8(),
			ToStatus:   domain.StatusPaid.ToUint8(),
			Utime:      time.Now().UnixMilli(),
		},
	}, nil
}
