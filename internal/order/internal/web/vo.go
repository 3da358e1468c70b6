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

package web

type CheckoutReq struct {
	// RequestID is generated by the storefront per checkout attempt and
	// guards against double-submit.
	RequestID string         `json:"requestID"`
	Items     []CheckoutItem `json:"items"`
	Customer  Customer       `json:"customer"`
	Notes     string         `json:"notes"`
}

type CheckoutItem struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutResp struct {
	OrderSN string `json:"orderSN"`
	// ClientSecret is consumed by the storefront's payment element to
	// confirm the card with the provider.
	ClientSecret  string `json:"clientSecret"`
	SubtotalCents int64  `json:"subtotalCents"`
	TaxCents      int64  `json:"taxCents"`
	TotalCents    int64  `json:"totalCents"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type CancelOrderReq struct {
	OrderSN string `json:"orderSN"`
}

type Order struct {
	SN            string      `json:"sn"`
	Status        uint8       `json:"status"`
	StatusName    string      `json:"statusName"`
	Items         []OrderItem `json:"items"`
	SubtotalCents int64       `json:"subtotalCents"`
	TaxCents      int64       `json:"taxCents"`
	TotalCents    int64       `json:"totalCents"`
	Payment       Payment     `json:"payment"`
	Customer      Customer    `json:"customer"`
	Pickup        Pickup      `json:"pickup"`
	Notes         string      `json:"notes"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type OrderItem struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int64  `json:"quantity"`
}

type Payment struct {
	Provider string `json:"provider"`
	Status   uint8  `json:"status"`
	Method   string `json:"method"`
}

type Pickup struct {
	Code         string `json:"code"`
	Instructions string `json:"instructions"`
	ReadyAt      int64  `json:"readyAt"`
	PickedUpAt   int64  `json:"pickedUpAt"`
	PickedUpBy   string `json:"pickedUpBy,omitempty"`
}

// admin

type ListFulfillmentReq struct {
	// Status zero is the needs-attention view.
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type AdminOrderDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type UpdateOrderStatusReq struct {
	OrderSN string `json:"orderSN"`
	Status  uint8  `json:"status"`
	// PickedUpBy records who collected the order; only meaningful for the
	// Ready -> PickedUp transition.
	PickedUpBy string `json:"pickedUpBy"`
}

type UpdateOrderStatusResp struct {
	OrderSN    string `json:"orderSN"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
	Utime      int64  `json:"utime"`
}
