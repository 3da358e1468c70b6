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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer drives the payment side of the order lifecycle: it
// applies the transition, moves stock, writes the audit trail and emits the
// order event for notifications.
type PaymentEventConsumer struct {
	svc      service.Service
	stock    *service.StockMover
	auditSvc audit.Service
	producer OrderEventProducer
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service,
	stock *service.StockMover,
	auditSvc audit.Service,
	producer OrderEventProducer,
	q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(PaymentEventsTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		stock:    stock,
		auditSvc: auditSvc,
		producer: producer,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("consume payment event failed", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("fetch message failed: %w", err)
	}
	var evt PaymentEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("decode payment event failed: %w", err)
	}

	order, err := c.svc.FindBySN(ctx, evt.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.logger.Warn("payment event for unknown order dropped",
				elog.String("order_sn", evt.OrderSN),
				elog.String("intent_id", evt.IntentID))
			return nil
		}
		return fmt.Errorf("find order %s failed: %w", evt.OrderSN, err)
	}

	switch evt.Status {
	case paymentStatusSucceeded:
		return c.handleSucceeded(ctx, order, evt.Method)
	case paymentStatusFailed:
		return c.handleFailed(ctx, order)
	case paymentStatusRefunded:
		return c.handleRefunded(ctx, order)
	default:
		c.logger.Warn("payment event with unknown status dropped",
			elog.String("order_sn", evt.OrderSN),
			elog.Any("status", evt.Status))
		return nil
	}
}

func (c *PaymentEventConsumer) handleSucceeded(ctx context.Context, order domain.Order, method string) error {
	changed, err := c.svc.MarkPaid(ctx, order, method)
	if err != nil {
		return err
	}
	if !changed {
		// duplicate delivery, everything below already happened
		return nil
	}
	c.stock.Decrement(ctx, order)
	c.logAudit(ctx, order, "order.paid", domain.StatusPaid)
	evt := OrderEvent{
		Kind:       OrderEventKindConfirmed,
		OrderSN:    order.SN,
		BuyerID:    order.BuyerID,
		Email:      order.Customer.Email,
		Name:       order.Customer.Name,
		TotalCents: order.TotalCents,
		PickupCode: order.Pickup.Code,
	}
	if err = c.producer.Produce(ctx, evt); err != nil {
		c.logger.Error("produce order event failed",
			elog.String("order_sn", order.SN), elog.FieldErr(err))
	}
	return nil
}

func (c *PaymentEventConsumer) handleFailed(ctx context.Context, order domain.Order) error {
	if err := c.svc.MarkPaymentFailed(ctx, order); err != nil {
		return fmt.Errorf("mark payment failed for order %s: %w", order.SN, err)
	}
	c.logAudit(ctx, order, "order.payment_failed", order.Status)
	return nil
}

func (c *PaymentEventConsumer) handleRefunded(ctx context.Context, order domain.Order) error {
	changed, err := c.svc.MarkRefunded(ctx, order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusTransition) {
			c.logger.Warn("refund event rejected by transition table",
				elog.String("order_sn", order.SN),
				elog.String("status", order.Status.String()))
			return nil
		}
		return err
	}
	if !changed {
		return nil
	}
	c.stock.Restore(ctx, order)
	c.logAudit(ctx, order, "order.refunded", domain.StatusRefunded)
	return nil
}

func (c *PaymentEventConsumer) logAudit(ctx context.Context, order domain.Order, action string, to domain.OrderStatus) {
	c.auditSvc.Log(ctx, audit.AuditLog{
		ActorID:    audit.ActorSystem,
		ActorName:  "stripe",
		Action:     action,
		TargetType: audit.TargetTypeOrder,
		TargetID:   order.SN,
		Before:     map[string]any{"status": order.Status.String()},
		After:      map[string]any{"status": to.String()},
	})
}
