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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductService struct {
	product.Service

	decremented map[int64]int64
	restored    map[int64]int64
	failIDs     map[int64]bool
}

func newStubProductService() *stubProductService {
	return &stubProductService{
		decremented: make(map[int64]int64),
		restored:    make(map[int64]int64),
		failIDs:     make(map[int64]bool),
	}
}

func (f *stubProductService) DecrementStock(_ context.Context, id int64, quantity int64) error {
	if f.failIDs[id] {
		return errors.New("insufficient stock")
	}
	f.decremented[id] += quantity
	return nil
}

func (f *stubProductService) RestoreStock(_ context.Context, id int64, quantity int64) error {
	f.restored[id] += quantity
	return nil
}

type stubAuditService struct {
	audit.Service

	entries []audit.AuditLog
}

func (f *stubAuditService) Log(_ context.Context, entry audit.AuditLog) {
	f.entries = append(f.entries, entry)
}

func stockOrder() domain.Order {
	return domain.Order{
		ID: 1,
		SN: "VM20260115001",
		Items: []domain.OrderItem{
			{ProductID: 11, SKU: "LED-A19-9W", Quantity: 3},
			{ProductID: 12, SKU: "WIRE-12AWG-50", Quantity: 1},
		},
	}
}

func TestStockMover_Decrement(t *testing.T) {
	t.Parallel()
	productSvc := newStubProductService()
	auditSvc := &stubAuditService{}
	mover := NewStockMover(productSvc, auditSvc)

	mover.Decrement(context.Background(), stockOrder())

	assert.Equal(t, int64(3), productSvc.decremented[11])
	assert.Equal(t, int64(1), productSvc.decremented[12])
	assert.Empty(t, auditSvc.entries)
}

func TestStockMover_Decrement_OversoldLandsInAuditTrail(t *testing.T) {
	t.Parallel()
	productSvc := newStubProductService()
	productSvc.failIDs[11] = true
	auditSvc := &stubAuditService{}
	mover := NewStockMover(productSvc, auditSvc)

	mover.Decrement(context.Background(), stockOrder())

	// the good line still moved, the failed one is on the trail for staff
	assert.Equal(t, int64(1), productSvc.decremented[12])
	require.Len(t, auditSvc.entries, 1)
	entry := auditSvc.entries[0]
	assert.Equal(t, audit.ActorSystem, entry.ActorID)
	assert.Equal(t, "inventory.oversold", entry.Action)
	assert.Equal(t, audit.TargetTypeInventory, entry.TargetType)
	assert.Equal(t, "LED-A19-9W", entry.TargetID)
	assert.Equal(t, "VM20260115001", entry.After["orderSN"])
}

func TestStockMover_Restore(t *testing.T) {
	t.Parallel()
	productSvc := newStubProductService()
	mover := NewStockMover(productSvc, &stubAuditService{})

	mover.Restore(context.Background(), stockOrder())

	assert.Equal(t, int64(3), productSvc.restored[11])
	assert.Equal(t, int64(1), productSvc.restored[12])
}
