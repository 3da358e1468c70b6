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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending   OrderStatus = 1
	StatusPaid      OrderStatus = 2
	StatusPreparing OrderStatus = 3
	StatusReady     OrderStatus = 4
	StatusPickedUp  OrderStatus = 5
	StatusRefunded  OrderStatus = 6
	StatusCancelled OrderStatus = 7
)

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPaid:
		return "paid"
	case StatusPreparing:
		return "preparing"
	case StatusReady:
		return "ready"
	case StatusPickedUp:
		return "picked_up"
	case StatusRefunded:
		return "refunded"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// orderStateTransitions is the single source of truth for the order
// lifecycle. Anything not listed here is rejected, including "refund from a
// state other than Paid".
var orderStateTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusPreparing, StatusRefunded, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusPickedUp},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderStateTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(orderStateTransitions[s]) == 0
}

// InFlightStatuses are the orders staff still need to act on: everything not
// yet picked up, refunded or cancelled.
func InFlightStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusPreparing, StatusReady}
}

type Order struct {
	ID int64
	// SN is the human-readable order number customers quote at pickup.
	SN      string
	BuyerID int64
	Status  OrderStatus

	Items []OrderItem
	// TotalCents == SubtotalCents + TaxCents, always.
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64

	Payment  PaymentInfo
	Customer Customer
	Pickup   Pickup
	Notes    string

	Ctime int64
	Utime int64
}

// OrderItem snapshots the product at purchase time. Later catalog edits do
// not rewrite history.
type OrderItem struct {
	ProductID  int64
	SKU        string
	Name       string
	PriceCents int64
	Quantity   int64
}

type PaymentInfo struct {
	Provider string
	IntentID string
	// Status mirrors the payment module's view: 1=initialized 2=succeeded
	// 3=failed 4=refunded. A failed attempt leaves the order Pending.
	Status uint8
	Method string
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Pickup struct {
	Code         string
	Instructions string
	ReadyAt      int64
	PickedUpAt   int64
	PickedUpBy   string
}
