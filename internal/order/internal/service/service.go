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
	"fmt"
	"time"

	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatusTransition is the conflict error for a target status
	// the transition table does not allow from the current one.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Stats feeds the admin dashboard.
type Stats struct {
	CountsByStatus map[domain.OrderStatus]int64
	// RevenueCents sums orders that have been paid for, whatever their
	// fulfillment state.
	RevenueCents int64
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	SetPaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	// ListByStatus pages the fulfillment queue; the zero status means the
	// needs-attention view over every in-flight status.
	ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)

	// MarkPaid applies the Pending -> Paid transition exactly once. The
	// second delivery of the same outcome reports changed == false.
	MarkPaid(ctx context.Context, order domain.Order, method string) (changed bool, err error)
	// MarkPaymentFailed records the failed attempt on the payment
	// sub-record; the order stays Pending so the customer can retry.
	MarkPaymentFailed(ctx context.Context, order domain.Order) error
	// MarkRefunded applies Paid -> Refunded; any other current status is
	// rejected by the transition table.
	MarkRefunded(ctx context.Context, order domain.Order) (changed bool, err error)
	// UpdateStatus is the staff-driven transition; it stamps ReadyAt and
	// PickedUpAt as the order moves and returns the previous status.
	UpdateStatus(ctx context.Context, order domain.Order, target domain.OrderStatus, pickedUpBy string) (domain.OrderStatus, error)
	CancelOrder(ctx context.Context, buyerID int64, sn string) error

	FindPendingBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Order, error)
	ClosePendingOrder(ctx context.Context, orderID int64) error
	Stats(ctx context.Context) (Stats, error)
}

func NewService(repo repository.OrderRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.OrderRepository
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusPending
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) SetPaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error {
	return s.repo.UpdatePaymentInfo(ctx, orderID, intentID, provider)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.ListByBuyerID(ctx, buyerID, offset, limit)
}

func (s *service) ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	statuses := []domain.OrderStatus{status}
	if status == 0 {
		// default fulfillment view: everything staff still need to act on
		statuses = domain.InFlightStatuses()
	}
	return s.repo.ListByStatuses(ctx, statuses, offset, limit)
}

func (s *service) MarkPaid(ctx context.Context, order domain.Order, method string) (bool, error) {
	if order.Status != domain.StatusPending {
		// the webhook was redelivered, or the sync job raced it
		return false, nil
	}
	updates := map[string]any{
		"payment_status": uint8(2),
	}
	if method != "" {
		updates["payment_method"] = method
	}
	err := s.repo.UpdateStatus(ctx, order.ID, domain.StatusPending, domain.StatusPaid, updates)
	if errors.Is(err, repository.ErrConcurrentStatusChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mark order %s paid failed: %w", order.SN, err)
	}
	return true, nil
}

func (s *service) MarkPaymentFailed(ctx context.Context, order domain.Order) error {
	return s.repo.UpdatePaymentStatus(ctx, order.ID, 3, "")
}

func (s *service) MarkRefunded(ctx context.Context, order domain.Order) (bool, error) {
	if !order.Status.CanTransitionTo(domain.StatusRefunded) {
		if order.Status == domain.StatusRefunded {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s -> %s",
			ErrInvalidStatusTransition, order.Status, domain.StatusRefunded)
	}
	err := s.repo.UpdateStatus(ctx, order.ID, domain.StatusPaid, domain.StatusRefunded, map[string]any{
		"payment_status": uint8(4),
	})
	if errors.Is(err, repository.ErrConcurrentStatusChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mark order %s refunded failed: %w", order.SN, err)
	}
	return true, nil
}

func (s *service) UpdateStatus(ctx context.Context, order domain.Order, target domain.OrderStatus, pickedUpBy string) (domain.OrderStatus, error) {
	if !order.Status.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, target)
	}
	updates := make(map[string]any, 2)
	switch target {
	case domain.StatusReady:
		updates["ready_at"] = time.Now().UnixMilli()
	case domain.StatusPickedUp:
		updates["picked_up_at"] = time.Now().UnixMilli()
		updates["picked_up_by"] = pickedUpBy
	}
	err := s.repo.UpdateStatus(ctx, order.ID, order.Status, target, updates)
	if errors.Is(err, repository.ErrConcurrentStatusChange) {
		return 0, fmt.Errorf("%w: order %s changed concurrently", ErrInvalidStatusTransition, order.SN)
	}
	if err != nil {
		return 0, err
	}
	return order.Status, nil
}

func (s *service) CancelOrder(ctx context.Context, buyerID int64, sn string) error {
	order, err := s.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusPending {
		return fmt.Errorf("%w: %s -> %s",
			ErrInvalidStatusTransition, order.Status, domain.StatusCancelled)
	}
	err = s.repo.UpdateStatus(ctx, order.ID, domain.StatusPending, domain.StatusCancelled, nil)
	if errors.Is(err, repository.ErrConcurrentStatusChange) {
		return fmt.Errorf("%w: order %s changed concurrently", ErrInvalidStatusTransition, sn)
	}
	return err
}

func (s *service) FindPendingBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Order, error) {
	return s.repo.FindPendingBefore(ctx, cutoff.UnixMilli(), offset, limit)
}

func (s *service) ClosePendingOrder(ctx context.Context, orderID int64) error {
	err := s.repo.UpdateStatus(ctx, orderID, domain.StatusPending, domain.StatusCancelled, nil)
	if errors.Is(err, repository.ErrConcurrentStatusChange) {
		// paid in the meantime, leave it alone
		return nil
	}
	return err
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.repo.CountOrdersByStatuses(ctx)
	if err != nil {
		return Stats{}, err
	}
	revenue, err := s.repo.SumTotalByStatuses(ctx, []domain.OrderStatus{
		domain.StatusPaid, domain.StatusPreparing,
		domain.StatusReady, domain.StatusPickedUp,
	})
	if err != nil {
		return Stats{}, err
	}
	return Stats{CountsByStatus: counts, RevenueCents: revenue}, nil
}
