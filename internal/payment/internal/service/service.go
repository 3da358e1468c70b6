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

	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/event"
	"github.com/ecodeclub/voltmart/internal/payment/internal/event/cache"
	"github.com/ecodeclub/voltmart/internal/payment/internal/repository"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service/stripe"
	"github.com/gotomicro/ego/core/elog"
)

var ErrPaymentNotFound = errors.New("payment not found")

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CreatePayment creates the provider intent and the local record. The
	// returned payment carries the client secret for the storefront.
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// HandleProviderEvent applies one verified webhook event. Redelivered
	// events are no-ops.
	HandleProviderEvent(ctx context.Context, evt domain.ProviderEvent) error
	// FindInitializedBefore and SyncIntentStatus back the reconciliation
	// job. synced reports whether the payment left Initialized, so the job
	// knows the row is gone from its result set.
	FindInitializedBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Payment, error)
	SyncIntentStatus(ctx context.Context, pmt domain.Payment) (synced bool, err error)
}

func NewService(repo repository.PaymentRepository,
	intentSvc *stripe.IntentService,
	processedEvents cache.ProcessedEventCache,
	producer event.PaymentEventProducer) Service {
	return &service{
		repo:            repo,
		intentSvc:       intentSvc,
		processedEvents: processedEvents,
		producer:        producer,
		logger:          elog.DefaultLogger,
	}
}

type service struct {
	repo            repository.PaymentRepository
	intentSvc       *stripe.IntentService
	processedEvents cache.ProcessedEventCache
	producer        event.PaymentEventProducer
	logger          *elog.Component
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if pmt.Currency == "" {
		pmt.Currency = "usd"
	}
	intentID, clientSecret, err := s.intentSvc.CreateIntent(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.IntentID = intentID
	pmt.Status = domain.PaymentStatusInitialized
	id, err := s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("persist payment failed: %w", err)
	}
	pmt.ID = id
	pmt.ClientSecret = clientSecret
	return pmt, nil
}

func (s *service) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := s.repo.FindByOrderSN(ctx, orderSN)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}
	return pmt, nil
}

func (s *service) HandleProviderEvent(ctx context.Context, evt domain.ProviderEvent) error {
	fresh, err := s.processedEvents.SetNXEventKey(ctx, evt.ID)
	if err != nil {
		return fmt.Errorf("mark provider event failed: %w", err)
	}
	if !fresh {
		s.logger.Info("duplicate provider event dropped",
			elog.String("event_id", evt.ID),
			elog.String("intent_id", evt.IntentID))
		return nil
	}
	err = s.applyEvent(ctx, evt)
	if err != nil {
		// release the key so the provider's retry gets another chance
		_, _ = s.processedEvents.DelEventKey(ctx, evt.ID)
	}
	return err
}

func (s *service) applyEvent(ctx context.Context, evt domain.ProviderEvent) error {
	pmt, err := s.repo.FindByIntentID(ctx, evt.IntentID)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			s.logger.Warn("provider event for unknown intent dropped",
				elog.String("event_id", evt.ID),
				elog.String("intent_id", evt.IntentID))
			return nil
		}
		return fmt.Errorf("find payment by intent failed: %w", err)
	}
	status := s.eventStatus(evt.Kind)
	if pmt.Status == status {
		return nil
	}
	err = s.repo.UpdateStatusByIntentID(ctx, evt.IntentID, status, evt.Method)
	if err != nil {
		return fmt.Errorf("update payment status failed: %w", err)
	}
	return s.produce(ctx, pmt.OrderSN, evt.IntentID, status, evt.Method)
}

func (s *service) eventStatus(kind domain.ProviderEventKind) domain.PaymentStatus {
	switch kind {
	case domain.ProviderEventSucceeded:
		return domain.PaymentStatusSucceeded
	case domain.ProviderEventRefunded:
		return domain.PaymentStatusRefunded
	default:
		return domain.PaymentStatusFailed
	}
}

func (s *service) FindInitializedBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Payment, error) {
	return s.repo.FindInitializedBefore(ctx, cutoff, offset, limit)
}

// SyncIntentStatus polls the provider for a payment stuck in Initialized and
// applies whatever final state the provider reports. Webhooks that never
// arrived are reconciled here.
func (s *service) SyncIntentStatus(ctx context.Context, pmt domain.Payment) (bool, error) {
	status, final, err := s.intentSvc.QueryIntentStatus(ctx, pmt.IntentID)
	if err != nil {
		return false, err
	}
	if !final {
		return false, nil
	}
	err = s.repo.UpdateStatusByIntentID(ctx, pmt.IntentID, status, "")
	if err != nil {
		return false, fmt.Errorf("update payment status failed: %w", err)
	}
	return true, s.produce(ctx, pmt.OrderSN, pmt.IntentID, status, "")
}

func (s *service) produce(ctx context.Context, orderSN, intentID string, status domain.PaymentStatus, method string) error {
	evt := event.PaymentEvent{
		OrderSN:  orderSN,
		IntentID: intentID,
		Status:   status.ToUint8(),
		Method:   method,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		return fmt.Errorf("produce payment event %#v failed: %w", evt, err)
	}
	return nil
}
