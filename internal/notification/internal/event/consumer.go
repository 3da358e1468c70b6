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
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/notification/internal/domain"
	"github.com/ecodeclub/voltmart/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

const OrderEventsTopic = "order_events"

const (
	orderEventKindConfirmed = "confirmed"
	orderEventKindReady     = "ready"
)

type OrderEvent struct {
	Kind       string `json:"kind"`
	OrderSN    string `json:"orderSN"`
	BuyerID    int64  `json:"buyerID"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	TotalCents int64  `json:"totalCents"`
	PickupCode string `json:"pickupCode"`
}

// OrderEventConsumer turns order events into customer emails. Sending is
// best-effort: a failed send is logged and the message is not retried.
type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(OrderEventsTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("consume order event failed", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("fetch message failed: %w", err)
	}
	var evt OrderEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("decode order event failed: %w", err)
	}
	n := domain.OrderNotification{
		OrderSN:    evt.OrderSN,
		Name:       evt.Name,
		Email:      evt.Email,
		TotalCents: evt.TotalCents,
		PickupCode: evt.PickupCode,
	}
	switch evt.Kind {
	case orderEventKindConfirmed:
		err = c.svc.SendOrderConfirmed(ctx, n)
	case orderEventKindReady:
		err = c.svc.SendOrderReady(ctx, n)
	default:
		c.logger.Warn("order event with unknown kind dropped",
			elog.String("kind", evt.Kind),
			elog.String("order_sn", evt.OrderSN))
		return nil
	}
	if err != nil {
		c.logger.Error("send order email failed",
			elog.String("kind", evt.Kind),
			elog.String("order_sn", evt.OrderSN),
			elog.FieldErr(err))
	}
	return nil
}
