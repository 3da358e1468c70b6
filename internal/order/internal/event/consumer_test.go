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
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMQConsumer struct {
	mq.Consumer

	msgs []*mq.Message
}

func (f *fakeMQConsumer) Consume(_ context.Context) (*mq.Message, error) {
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

type fakeOrderService struct {
	service.Service

	orders map[string]domain.Order

	paidChanged     bool
	refundedChanged bool
	markPaidCalls   int
	failedCalls     int
	refundedCalls   int
}

func (f *fakeOrderService) FindBySN(_ context.Context, sn string) (domain.Order, error) {
	order, ok := f.orders[sn]
	if !ok {
		return domain.Order{}, service.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderService) MarkPaid(_ context.Context, _ domain.Order, _ string) (bool, error) {
	f.markPaidCalls++
	return f.paidChanged, nil
}

func (f *fakeOrderService) MarkPaymentFailed(_ context.Context, _ domain.Order) error {
	f.failedCalls++
	return nil
}

func (f *fakeOrderService) MarkRefunded(_ context.Context, _ domain.Order) (bool, error) {
	f.refundedCalls++
	return f.refundedChanged, nil
}

type fakeProductService struct {
	product.Service

	decremented map[int64]int64
	restored    map[int64]int64
}

func (f *fakeProductService) DecrementStock(_ context.Context, id int64, quantity int64) error {
	f.decremented[id] += quantity
	return nil
}

func (f *fakeProductService) RestoreStock(_ context.Context, id int64, quantity int64) error {
	f.restored[id] += quantity
	return nil
}

type fakeAuditService struct {
	audit.Service

	entries []audit.AuditLog
}

func (f *fakeAuditService) Log(_ context.Context, entry audit.AuditLog) {
	f.entries = append(f.entries, entry)
}

type fakeOrderProducer struct {
	produced []OrderEvent
}

func (f *fakeOrderProducer) Produce(_ context.Context, evt OrderEvent) error {
	f.produced = append(f.produced, evt)
	return nil
}

func paidOrder() domain.Order {
	return domain.Order{
		ID:      1,
		SN:      "VM20260115001",
		BuyerID: 1001,
		Status:  domain.StatusPending,
		Items: []domain.OrderItem{
			{ProductID: 11, SKU: "LED-A19-9W", Quantity: 3},
			{ProductID: 12, SKU: "WIRE-12AWG-50", Quantity: 1},
		},
		TotalCents: 4897,
		Customer:   domain.Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		Pickup:     domain.Pickup{Code: "7KQ2M9XA"},
	}
}

func newTestConsumer(msgs []*mq.Message, svc *fakeOrderService, productSvc *fakeProductService,
	auditSvc *fakeAuditService, producer *fakeOrderProducer) *PaymentEventConsumer {
	return &PaymentEventConsumer{
		svc:      svc,
		stock:    service.NewStockMover(productSvc, auditSvc),
		auditSvc: auditSvc,
		producer: producer,
		consumer: &fakeMQConsumer{msgs: msgs},
		logger:   elog.DefaultLogger,
	}
}

func marshal(t *testing.T, evt PaymentEvent) *mq.Message {
	t.Helper()
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	return &mq.Message{Value: val}
}

func TestPaymentEventConsumer_Succeeded(t *testing.T) {
	t.Parallel()

	order := paidOrder()
	svc := &fakeOrderService{orders: map[string]domain.Order{order.SN: order}, paidChanged: true}
	productSvc := &fakeProductService{decremented: map[int64]int64{}, restored: map[int64]int64{}}
	auditSvc := &fakeAuditService{}
	producer := &fakeOrderProducer{}
	c := newTestConsumer([]*mq.Message{
		marshal(t, PaymentEvent{OrderSN: order.SN, IntentID: "pi_123", Status: 2, Method: "visa 4242"}),
	}, svc, productSvc, auditSvc, producer)

	err := c.Consume(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), productSvc.decremented[11])
	assert.Equal(t, int64(1), productSvc.decremented[12])
	require.Len(t, producer.produced, 1)
	evt := producer.produced[0]
	assert.Equal(t, OrderEventKindConfirmed, evt.Kind)
	assert.Equal(t, order.SN, evt.OrderSN)
	assert.Equal(t, "7KQ2M9XA", evt.PickupCode)
	require.Len(t, auditSvc.entries, 1)
	assert.Equal(t, audit.ActorSystem, auditSvc.entries[0].ActorID)
	assert.Equal(t, "order.paid", auditSvc.entries[0].Action)
}

func TestPaymentEventConsumer_DuplicateSucceededIsNoop(t *testing.T) {
	t.Parallel()

	order := paidOrder()
	order.Status = domain.StatusPaid
	// MarkPaid reports no change on the second delivery
	svc := &fakeOrderService{orders: map[string]domain.Order{order.SN: order}, paidChanged: false}
	productSvc := &fakeProductService{decremented: map[int64]int64{}, restored: map[int64]int64{}}
	auditSvc := &fakeAuditService{}
	producer := &fakeOrderProducer{}
	c := newTestConsumer([]*mq.Message{
		marshal(t, PaymentEvent{OrderSN: order.SN, IntentID: "pi_123", Status: 2}),
	}, svc, productSvc, auditSvc, producer)

	err := c.Consume(context.Background())
	require.NoError(t, err)

	assert.Empty(t, productSvc.decremented)
	assert.Empty(t, producer.produced)
	assert.Empty(t, auditSvc.entries)
}

func TestPaymentEventConsumer_UnknownOrderDropped(t *testing.T) {
	t.Parallel()

	svc := &fakeOrderService{orders: map[string]domain.Order{}}
	productSvc := &fakeProductService{decremented: map[int64]int64{}, restored: map[int64]int64{}}
	c := newTestConsumer([]*mq.Message{
		marshal(t, PaymentEvent{OrderSN: "VM-missing", Status: 2}),
	}, svc, productSvc, &fakeAuditService{}, &fakeOrderProducer{})

	err := c.Consume(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, svc.markPaidCalls)
}

func TestPaymentEventConsumer_Failed(t *testing.T) {
	t.Parallel()

	order := paidOrder()
	svc := &fakeOrderService{orders: map[string]domain.Order{order.SN: order}}
	productSvc := &fakeProductService{decremented: map[int64]int64{}, restored: map[int64]int64{}}
	auditSvc := &fakeAuditService{}
	c := newTestConsumer([]*mq.Message{
		marshal(t, PaymentEvent{OrderSN: order.SN, IntentID: "pi_123", Status: 3}),
	}, svc, productSvc, auditSvc, &fakeOrderProducer{})

	err := c.Consume(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, svc.failedCalls)
	assert.Empty(t, productSvc.decremented)
	require.Len(t, auditSvc.entries, 1)
	assert.Equal(t, "order.payment_failed", auditSvc.entries[0].Action)
}

func TestPaymentEventConsumer_Refunded(t *testing.T) {
	t.Parallel()

	order := paidOrder()
	order.Status = domain.StatusPaid
	svc := &fakeOrderService{orders: map[string]domain.Order{order.SN: order}, refundedChanged: true}
	productSvc := &fakeProductService{decremented: map[int64]int64{}, restored: map[int64]int64{}}
	auditSvc := &fakeAuditService{}
	c := newTestConsumer([]*mq.Message{
		marshal(t, PaymentEvent{OrderSN: order.SN, IntentID: "pi_123", Status: 4}),
	}, svc, productSvc, auditSvc, &fakeOrderProducer{})

	err := c.Consume(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), productSvc.restored[11])
	assert.Equal(t, int64(1), productSvc.restored[12])
	require.Len(t, auditSvc.entries, 1)
	assert.Equal(t, "order.refunded", auditSvc.entries[0].Action)
}
