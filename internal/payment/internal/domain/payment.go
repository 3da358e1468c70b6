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

package domain

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusInitialized PaymentStatus = 1
	PaymentStatusSucceeded   PaymentStatus = 2
	PaymentStatusFailed      PaymentStatus = 3
	PaymentStatusRefunded    PaymentStatus = 4
)

type Payment struct {
	ID      int64
	OrderSN string
	// IntentID is the provider-side payment intent id, the correlation key
	// for webhook events.
	IntentID    string
	AmountCents int64
	Currency    string
	Status      PaymentStatus
	// Method is the card summary reported by the provider, e.g. "visa 4242".
	Method string
	// ClientSecret is returned to the storefront to confirm the intent.
	// Never persisted.
	ClientSecret string
	Ctime        int64
	Utime        int64
}

// ProviderEvent is a payment provider webhook event after signature
// verification, reduced to what reconciliation needs.
type ProviderEvent struct {
	ID       string
	Kind     ProviderEventKind
	IntentID string
	OrderSN  string
	Method   string
}

type ProviderEventKind uint8

const (
	ProviderEventSucceeded ProviderEventKind = 1
	ProviderEventFailed    ProviderEventKind = 2
	ProviderEventRefunded  ProviderEventKind = 3
)
