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

package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCloseService pages over the still-pending set the way the DAO does:
// closing an order removes it from subsequent pages.
type fakeCloseService struct {
	service.Service

	orders    []domain.Order
	closedSet map[int64]bool
	failIDs   map[int64]bool
	closed    []int64
}

func newFakeCloseService(n int) *fakeCloseService {
	f := &fakeCloseService{
		closedSet: make(map[int64]bool),
		failIDs:   make(map[int64]bool),
	}
	for i := 1; i <= n; i++ {
		f.orders = append(f.orders, domain.Order{
			ID:     int64(i),
			SN:     fmt.Sprintf("VM2026010100%04d", i),
			Status: domain.StatusPending,
		})
	}
	return f
}

func (f *fakeCloseService) FindPendingBefore(_ context.Context, _ time.Time, offset, limit int) ([]domain.Order, error) {
	var pending []domain.Order
	for _, o := range f.orders {
		if !f.closedSet[o.ID] {
			pending = append(pending, o)
		}
	}
	if offset >= len(pending) {
		return nil, nil
	}
	end := offset + limit
	if end > len(pending) {
		end = len(pending)
	}
	return pending[offset:end], nil
}

func (f *fakeCloseService) ClosePendingOrder(_ context.Context, orderID int64) error {
	if f.failIDs[orderID] {
		return errors.New("close failed")
	}
	f.closedSet[orderID] = true
	f.closed = append(f.closed, orderID)
	return nil
}

func TestCloseExpiredOrdersJob_ClosesEveryPage(t *testing.T) {
	t.Parallel()
	svc := newFakeCloseService(40)
	job := NewCloseExpiredOrdersJob(svc, 30, 10)

	require.NoError(t, job.Run(context.Background()))

	assert.Len(t, svc.closed, 40)
	for i := 1; i <= 40; i++ {
		assert.True(t, svc.closedSet[int64(i)], "order %d not closed", i)
	}
}

func TestCloseExpiredOrdersJob_SkipsRowsThatRefuseToClose(t *testing.T) {
	t.Parallel()
	svc := newFakeCloseService(12)
	svc.failIDs[3] = true
	svc.failIDs[7] = true
	job := NewCloseExpiredOrdersJob(svc, 30, 5)

	require.NoError(t, job.Run(context.Background()))

	assert.Len(t, svc.closed, 10)
	assert.False(t, svc.closedSet[3])
	assert.False(t, svc.closedSet[7])
}
