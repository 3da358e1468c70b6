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

package stripe

import (
	"context"
	"fmt"

	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	stripego "github.com/stripe/stripe-go/v79"
)

//go:generate mockgen -source=./intent.go -package=stripemocks -destination=./mocks/intent.mock.go -typed IntentAPI
type IntentAPI interface {
	New(params *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error)
	Get(id string, params *stripego.PaymentIntentParams) (*stripego.PaymentIntent, error)
}

// IntentService wraps the provider payment-intent API the same way for real
// calls and for the reconciliation poll.
type IntentService struct {
	api IntentAPI
}

func NewIntentService(api IntentAPI) *IntentService {
	return &IntentService{api: api}
}

func (s *IntentService) CreateIntent(ctx context.Context, pmt domain.Payment) (id, clientSecret string, err error) {
	params := &stripego.PaymentIntentParams{
		Params:   stripego.Params{Context: ctx},
		Amount:   stripego.Int64(pmt.AmountCents),
		Currency: stripego.String(pmt.Currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.AddMetadata("order_sn", pmt.OrderSN)
	intent, err := s.api.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create payment intent failed: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}

// QueryIntentStatus maps the provider-side intent state to a payment status.
// The reconciliation job treats anything still in flight as not final.
func (s *IntentService) QueryIntentStatus(ctx context.Context, intentID string) (domain.PaymentStatus, bool, error) {
	intent, err := s.api.Get(intentID, &stripego.PaymentIntentParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return 0, false, fmt.Errorf("query payment intent failed: %w", err)
	}
	switch intent.Status {
	case stripego.PaymentIntentStatusSucceeded:
		return domain.PaymentStatusSucceeded, true, nil
	case stripego.PaymentIntentStatusCanceled:
		return domain.PaymentStatusFailed, true, nil
	default:
		return domain.PaymentStatusInitialized, false, nil
	}
}
