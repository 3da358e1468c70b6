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
	"testing"

	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	repository.OrderRepository

	created      []domain.Order
	updates      []statusUpdate
	updateErrs   []error
	listStatuses [][]domain.OrderStatus
}

type statusUpdate struct {
	orderID int64
	from    domain.OrderStatus
	to      domain.OrderStatus
	fields  map[string]any
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, orderID int64, from, to domain.OrderStatus, updates map[string]any) error {
	f.updates = append(f.updates, statusUpdate{orderID: orderID, from: from, to: to, fields: updates})
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		return err
	}
	return nil
}

func (f *fakeOrderRepository) ListByStatuses(_ context.Context, statuses []domain.OrderStatus, _, _ int) ([]domain.Order, int64, error) {
	f.listStatuses = append(f.listStatuses, statuses)
	return nil, 0, nil
}

func TestService_ListByStatus(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepository{}
	svc := NewService(repo)

	_, _, err := svc.ListByStatus(context.Background(), domain.StatusReady, 0, 20)
	require.NoError(t, err)
	require.Len(t, repo.listStatuses, 1)
	assert.Equal(t, []domain.OrderStatus{domain.StatusReady}, repo.listStatuses[0])

	// the zero status is the needs-attention view over every in-flight status
	_, _, err = svc.ListByStatus(context.Background(), 0, 0, 20)
	require.NoError(t, err)
	require.Len(t, repo.listStatuses, 2)
	assert.Equal(t, []domain.OrderStatus{
		domain.StatusPending,
		domain.StatusPaid,
		domain.StatusPreparing,
		domain.StatusReady,
	}, repo.listStatuses[1])
}

func TestService_CreateOrder_ForcesPending(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepository{}
	svc := NewService(repo)

	created, err := svc.CreateOrder(context.Background(), domain.Order{
		SN:     "VM123",
		Status: domain.StatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestService_MarkPaid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		order       domain.Order
		updateErrs  []error
		wantChanged bool
		wantUpdates int
	}{
		{
			name:        "pending order becomes paid",
			order:       domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPending},
			wantChanged: true,
			wantUpdates: 1,
		},
		{
			name:        "already paid is a no-op",
			order:       domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPaid},
			wantChanged: false,
			wantUpdates: 0,
		},
		{
			name:        "lost the race to another writer",
			order:       domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPending},
			updateErrs:  []error{repository.ErrConcurrentStatusChange},
			wantChanged: false,
			wantUpdates: 1,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeOrderRepository{updateErrs: tc.updateErrs}
			svc := NewService(repo)

			changed, err := svc.MarkPaid(context.Background(), tc.order, "visa 4242")
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Len(t, repo.updates, tc.wantUpdates)
			if tc.wantUpdates > 0 {
				up := repo.updates[0]
				assert.Equal(t, domain.StatusPending, up.from)
				assert.Equal(t, domain.StatusPaid, up.to)
			}
		})
	}
}

func TestService_MarkRefunded(t *testing.T) {
	t.Parallel()

	t.Run("paid order refunds", func(t *testing.T) {
		t.Parallel()
		repo := &fakeOrderRepository{}
		svc := NewService(repo)

		changed, err := svc.MarkRefunded(context.Background(), domain.Order{
			ID: 7, SN: "VM7", Status: domain.StatusPaid,
		})
		require.NoError(t, err)
		assert.True(t, changed)
		require.Len(t, repo.updates, 1)
		assert.Equal(t, domain.StatusRefunded, repo.updates[0].to)
	})

	t.Run("already refunded is a no-op", func(t *testing.T) {
		t.Parallel()
		repo := &fakeOrderRepository{}
		svc := NewService(repo)

		changed, err := svc.MarkRefunded(context.Background(), domain.Order{
			ID: 7, SN: "VM7", Status: domain.StatusRefunded,
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, repo.updates)
	})

	t.Run("refund before payment is rejected", func(t *testing.T) {
		t.Parallel()
		repo := &fakeOrderRepository{}
		svc := NewService(repo)

		_, err := svc.MarkRefunded(context.Background(), domain.Order{
			ID: 7, SN: "VM7", Status: domain.StatusPending,
		})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Empty(t, repo.updates)
	})

	t.Run("refund after pickup is rejected", func(t *testing.T) {
		t.Parallel()
		repo := &fakeOrderRepository{}
		svc := NewService(repo)

		_, err := svc.MarkRefunded(context.Background(), domain.Order{
			ID: 7, SN: "VM7", Status: domain.StatusPickedUp,
		})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		order      domain.Order
		target     domain.OrderStatus
		pickedUpBy string
		updateErrs []error
		wantErr    error
		wantFields []string
	}{
		{
			name:   "paid to preparing",
			order:  domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPaid},
			target: domain.StatusPreparing,
		},
		{
			name:       "preparing to ready stamps ready_at",
			order:      domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPreparing},
			target:     domain.StatusReady,
			wantFields: []string{"ready_at"},
		},
		{
			name:       "ready to picked up stamps collector",
			order:      domain.Order{ID: 1, SN: "VM1", Status: domain.StatusReady},
			target:     domain.StatusPickedUp,
			pickedUpBy: "J. Alvarez",
			wantFields: []string{"picked_up_at", "picked_up_by"},
		},
		{
			name:    "skipping preparing is rejected",
			order:   domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPaid},
			target:  domain.StatusPickedUp,
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:    "cancel after pickup is rejected",
			order:   domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPickedUp},
			target:  domain.StatusCancelled,
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:       "concurrent change surfaces as conflict",
			order:      domain.Order{ID: 1, SN: "VM1", Status: domain.StatusPaid},
			target:     domain.StatusPreparing,
			updateErrs: []error{repository.ErrConcurrentStatusChange},
			wantErr:    ErrInvalidStatusTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeOrderRepository{updateErrs: tc.updateErrs}
			svc := NewService(repo)

			from, err := svc.UpdateStatus(context.Background(), tc.order, tc.target, tc.pickedUpBy)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order.Status, from)
			require.Len(t, repo.updates, 1)
			for _, field := range tc.wantFields {
				assert.Contains(t, repo.updates[0].fields, field)
			}
		})
	}
}

func TestService_ClosePendingOrder_LeavesPaidAlone(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepository{updateErrs: []error{repository.ErrConcurrentStatusChange}}
	svc := NewService(repo)

	err := svc.ClosePendingOrder(context.Background(), 42)
	assert.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.StatusPending, repo.updates[0].from)
	assert.Equal(t, domain.StatusCancelled, repo.updates[0].to)
}
