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

	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/event"
	"github.com/ecodeclub/voltmart/internal/payment/internal/repository"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v79"
)

type fakePaymentRepository struct {
	repository.PaymentRepository
	byIntent map[string]domain.Payment
	updates  []string
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{byIntent: make(map[string]domain.Payment)}
}

func (f *fakePaymentRepository) Create(_ context.Context, pmt domain.Payment) (int64, error) {
	pmt.ID = int64(len(f.byIntent) + 1)
	f.byIntent[pmt.IntentID] = pmt
	return pmt.ID, nil
}

func (f *fakePaymentRepository) FindByIntentID(_ context.Context, intentID string) (domain.Payment, error) {
	pmt, ok := f.byIntent[intentID]
	if !ok {
		return domain.Payment{}, repository.ErrDataNotFound
	}
	return pmt, nil
}

func (f *fakePaymentRepository) UpdateStatusByIntentID(_ context.Context, intentID string, status domain.PaymentStatus, method string) error {
	pmt := f.byIntent[intentID]
	pmt.Status = status
	if method != "" {
		pmt.Method = method
	}
	f.byIntent[intentID] = pmt
	f.updates = append(f.updates, intentID)
	return nil
}

type fakeIntentAPI struct {
	lastParams *stripego.PaymentIntentParams
}

func (f *fakeIntentAPI) New(params *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error) {
	f.lastParams = params
	return &stripego.PaymentIntent{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret",
	}, nil
}

func (f *fakeIntentAPI) Get(id string, _ *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error) {
	return &stripego.PaymentIntent{
		ID:     id,
		Status: stripego.PaymentIntentStatusSucceeded,
	}, nil
}

type fakeProcessedEventCache struct {
	seen map[string]bool
}

func newFakeProcessedEventCache() *fakeProcessedEventCache {
	return &fakeProcessedEventCache{seen: make(map[string]bool)}
}

func (f *fakeProcessedEventCache) SetNXEventKey(_ context.Context, eventID string) (bool, error) {
	if f.seen[eventID] {
		return false, nil
	}
	f.seen[eventID] = true
	return true, nil
}

func (f *fakeProcessedEventCache) DelEventKey(_ context.Context, eventID string) (int64, error) {
	delete(f.seen, eventID)
	return 1, nil
}

type fakeProducer struct {
	events []event.PaymentEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.PaymentEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func newTestService() (Service, *fakePaymentRepository, *fakeProducer) {
	repo := newFakePaymentRepository()
	producer := &fakeProducer{}
	svc := NewService(repo, stripe.NewIntentService(&fakeIntentAPI{}),
		newFakeProcessedEventCache(), producer)
	return svc, repo, producer
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService()

	pmt, err := svc.CreatePayment(context.Background(), domain.Payment{
		OrderSN:     "VM1756380000001234abcd",
		AmountCents: 2397,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test_123", pmt.IntentID)
	assert.Equal(t, "pi_test_123_secret", pmt.ClientSecret)
	assert.Equal(t, "usd", pmt.Currency)
	assert.Equal(t, domain.PaymentStatusInitialized, repo.byIntent["pi_test_123"].Status)
}

func TestService_HandleProviderEvent(t *testing.T) {
	t.Parallel()
	svc, repo, producer := newTestService()
	repo.byIntent["pi_1"] = domain.Payment{
		ID: 1, OrderSN: "VM-ORDER-1", IntentID: "pi_1",
		AmountCents: 2397, Status: domain.PaymentStatusInitialized,
	}

	evt := domain.ProviderEvent{
		ID:       "evt_1",
		Kind:     domain.ProviderEventSucceeded,
		IntentID: "pi_1",
		Method:   "visa 4242",
	}
	require.NoError(t, svc.HandleProviderEvent(context.Background(), evt))
	assert.Equal(t, domain.PaymentStatusSucceeded, repo.byIntent["pi_1"].Status)
	assert.Equal(t, "visa 4242", repo.byIntent["pi_1"].Method)
	require.Len(t, producer.events, 1)
	assert.Equal(t, event.PaymentEvent{
		OrderSN:  "VM-ORDER-1",
		IntentID: "pi_1",
		Status:   domain.PaymentStatusSucceeded.ToUint8(),
		Method:   "visa 4242",
	}, producer.events[0])

	// exact redelivery is dropped by the processed-event guard
	require.NoError(t, svc.HandleProviderEvent(context.Background(), evt))
	assert.Len(t, producer.events, 1)
	assert.Len(t, repo.updates, 1)

	// same outcome under a fresh event id is dropped by the status check
	evt.ID = "evt_2"
	require.NoError(t, svc.HandleProviderEvent(context.Background(), evt))
	assert.Len(t, producer.events, 1)
	assert.Len(t, repo.updates, 1)
}

func TestService_HandleProviderEvent_UnknownIntent(t *testing.T) {
	t.Parallel()
	svc, repo, producer := newTestService()

	err := svc.HandleProviderEvent(context.Background(), domain.ProviderEvent{
		ID:       "evt_9",
		Kind:     domain.ProviderEventSucceeded,
		IntentID: "pi_unknown",
	})
	require.NoError(t, err)
	assert.Empty(t, repo.updates)
	assert.Empty(t, producer.events)
}
