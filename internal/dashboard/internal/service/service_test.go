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
	"github.com/ecodeclub/voltmart/internal/order"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	order.Service

	stats order.Stats
	err   error
}

func (f *fakeOrderService) Stats(_ context.Context) (order.Stats, error) {
	return f.stats, f.err
}

type fakeProductService struct {
	product.Service

	lowStock     []product.Product
	gotThreshold int64
}

func (f *fakeProductService) FindLowStock(_ context.Context, threshold int64) ([]product.Product, error) {
	f.gotThreshold = threshold
	return f.lowStock, nil
}

type fakeAuditService struct {
	audit.Service

	entries []audit.AuditLog
}

func (f *fakeAuditService) List(_ context.Context, _ audit.Filter, _, limit int) ([]audit.AuditLog, int64, error) {
	if limit < len(f.entries) {
		return f.entries[:limit], int64(len(f.entries)), nil
	}
	return f.entries, int64(len(f.entries)), nil
}

func TestService_Summary(t *testing.T) {
	t.Parallel()

	orderSvc := &fakeOrderService{stats: order.Stats{
		RevenueCents: 489700,
		CountsByStatus: map[order.Status]int64{
			order.StatusPending: 3,
			order.StatusPaid:    5,
		},
	}}
	productSvc := &fakeProductService{lowStock: []product.Product{
		{ID: 11, SKU: "LED-A19-9W", Name: "9W A19 LED Bulb", Stock: 4},
	}}
	auditSvc := &fakeAuditService{entries: []audit.AuditLog{
		{ID: 1, Action: "order.paid", TargetType: audit.TargetTypeOrder},
	}}
	svc := NewService(orderSvc, productSvc, auditSvc)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(489700), summary.RevenueCents)
	assert.Equal(t, int64(5), summary.CountsByStatus[order.StatusPaid])
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "LED-A19-9W", summary.LowStock[0].SKU)
	assert.Equal(t, int64(lowStockThreshold), productSvc.gotThreshold)
	require.Len(t, summary.RecentAudit, 1)
}

func TestService_Summary_PropagatesFailure(t *testing.T) {
	t.Parallel()

	orderSvc := &fakeOrderService{err: errors.New("db gone")}
	svc := NewService(orderSvc, &fakeProductService{}, &fakeAuditService{})

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
