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
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/ecodeclub/voltmart/internal/payment"
	"github.com/ecodeclub/voltmart/internal/pkg/pickupcode"
	"github.com/ecodeclub/voltmart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var (
	errDuplicateRequest  = errors.New("duplicate checkout request")
	errInvalidInput      = errors.New("invalid checkout input")
	errInsufficientStock = errors.New("insufficient stock")
)

type Handler struct {
	svc         service.Service
	paymentSvc  payment.Service
	productSvc  product.Service
	auditSvc    audit.Service
	snGenerator *sequencenumber.Generator
	pickupCodes *pickupcode.Generator
	cache       ecache.Cache
}

func NewHandler(svc service.Service,
	paymentSvc payment.Service,
	productSvc product.Service,
	auditSvc audit.Service,
	snGenerator *sequencenumber.Generator,
	pickupCodes *pickupcode.Generator,
	cache ecache.Cache) *Handler {
	return &Handler{
		svc:         svc,
		paymentSvc:  paymentSvc,
		productSvc:  productSvc,
		auditSvc:    auditSvc,
		snGenerator: snGenerator,
		pickupCodes: pickupCodes,
		cache:       cache,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Checkout creates the order together with its payment intent. The order
// stays Pending until the webhook confirms the charge.
func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		switch {
		case errors.Is(err, errDuplicateRequest):
			return duplicateRequestResult, nil
		case errors.Is(err, errInvalidInput):
			return invalidOrderInputResult, nil
		default:
			return systemErrorResult, err
		}
	}
	order, err := h.createOrder(ctx.Request.Context(), req, uid)
	if err != nil {
		switch {
		case errors.Is(err, errInsufficientStock):
			return insufficientStockResult, nil
		case errors.Is(err, errInvalidInput):
			return invalidOrderInputResult, nil
		default:
			return systemErrorResult, fmt.Errorf("create order failed: %w", err)
		}
	}

	pmt, err := h.paymentSvc.CreatePayment(ctx.Request.Context(), payment.Payment{
		OrderSN:     order.SN,
		AmountCents: order.TotalCents,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("create payment for order %s failed: %w", order.SN, err)
	}
	err = h.svc.SetPaymentInfo(ctx.Request.Context(), order.ID, pmt.IntentID, "stripe")
	if err != nil {
		return systemErrorResult, fmt.Errorf("record payment intent on order %s failed: %w", order.SN, err)
	}

	h.auditSvc.Log(ctx.Request.Context(), audit.AuditLog{
		ActorID:    uid,
		Action:     "order.create",
		TargetType: audit.TargetTypeOrder,
		TargetID:   order.SN,
		After: map[string]any{
			"totalCents": order.TotalCents,
			"items":      len(order.Items),
		},
		IP:        ctx.ClientIP(),
		UserAgent: ctx.GetHeader("User-Agent"),
	})

	return ginx.Result{
		Data: CheckoutResp{
			OrderSN:       order.SN,
			ClientSecret:  pmt.ClientSecret,
			SubtotalCents: order.SubtotalCents,
			TaxCents:      order.TaxCents,
			TotalCents:    order.TotalCents,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("%w: empty request id", errInvalidInput)
	}
	key := h.checkoutRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return errDuplicateRequest
	}
	if err := h.cache.Set(ctx, key, requestID, 24*time.Hour); err != nil {
		return fmt.Errorf("cache request id failed: %w", err)
	}
	return nil
}

func (h *Handler) checkoutRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) createOrder(ctx context.Context, req CheckoutReq, buyerID int64) (domain.Order, error) {
	if err := h.validateCustomer(req.Customer); err != nil {
		return domain.Order{}, err
	}
	items, subtotal, err := h.buildOrderItems(ctx, req.Items)
	if err != nil {
		return domain.Order{}, err
	}
	// Tax is collected at the counter for now.
	tax := int64(0)

	sn, err := h.snGenerator.Generate(buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("generate order sn failed: %w", err)
	}
	code, err := h.pickupCodes.Generate()
	if err != nil {
		return domain.Order{}, fmt.Errorf("generate pickup code failed: %w", err)
	}

	return h.svc.CreateOrder(ctx, domain.Order{
		SN:            sn,
		BuyerID:       buyerID,
		Items:         items,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Pickup: domain.Pickup{Code: code},
		Notes:  req.Notes,
	})
}

func (h *Handler) validateCustomer(c Customer) error {
	if c.Name == "" {
		return fmt.Errorf("%w: customer name required", errInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: bad customer email", errInvalidInput)
	}
	return nil
}

// buildOrderItems re-reads every product so the snapshot carries the
// authoritative price, not whatever the storefront submitted.
func (h *Handler) buildOrderItems(ctx context.Context, reqItems []CheckoutItem) ([]domain.OrderItem, int64, error) {
	if len(reqItems) == 0 {
		return nil, 0, fmt.Errorf("%w: empty cart", errInvalidInput)
	}
	items := make([]domain.OrderItem, 0, len(reqItems))
	var subtotal int64
	for _, ri := range reqItems {
		if ri.Quantity < 1 {
			return nil, 0, fmt.Errorf("%w: bad quantity for %s", errInvalidInput, ri.SKU)
		}
		p, err := h.productSvc.FindBySKU(ctx, ri.SKU)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return nil, 0, fmt.Errorf("%w: unknown sku %s", errInvalidInput, ri.SKU)
			}
			return nil, 0, fmt.Errorf("find product %s failed: %w", ri.SKU, err)
		}
		if ri.Quantity > p.Stock {
			return nil, 0, fmt.Errorf("%w: sku %s", errInsufficientStock, p.SKU)
		}
		items = append(items, domain.OrderItem{
			ProductID:  p.ID,
			SKU:        p.SKU,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   ri.Quantity,
		})
		subtotal += p.PriceCents * ri.Quantity
	}
	return items, subtotal, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByBuyerID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
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

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
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

func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.CancelOrder(ctx.Request.Context(), uid, req.OrderSN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return orderNotFoundResult, nil
		case errors.Is(err, service.ErrInvalidStatusTransition):
			return invalidStatusTransitionResult, nil
		default:
			return systemErrorResult, err
		}
	}
	h.auditSvc.Log(ctx.Request.Context(), audit.AuditLog{
		ActorID:    uid,
		Action:     "order.cancel",
		TargetType: audit.TargetTypeOrder,
		TargetID:   req.OrderSN,
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.GetHeader("User-Agent"),
	})
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:            order.SN,
		Status:        order.Status.ToUint8(),
		StatusName:    order.Status.String(),
		SubtotalCents: order.SubtotalCents,
		TaxCents:      order.TaxCents,
		TotalCents:    order.TotalCents,
		Payment: Payment{
			Provider: order.Payment.Provider,
			Status:   order.Payment.Status,
			Method:   order.Payment.Method,
		},
		Customer: Customer{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		},
		Pickup: Pickup{
			Code:         order.Pickup.Code,
			Instructions: order.Pickup.Instructions,
			ReadyAt:      order.Pickup.ReadyAt,
			PickedUpAt:   order.Pickup.PickedUpAt,
			PickedUpBy:   order.Pickup.PickedUpBy,
		},
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				SKU:        src.SKU,
				Name:       src.Name,
				PriceCents: src.PriceCents,
				Quantity:   src.Quantity,
			}
		}),
		Notes: order.Notes,
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
