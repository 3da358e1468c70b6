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

import (
	"context"
	"strings"
	"testing"

	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/ecodeclub/voltmart/internal/pkg/pickupcode"
	"github.com/ecodeclub/voltmart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	product.Service

	products map[string]product.Product
}

func (f *fakeProductService) FindBySKU(_ context.Context, sku string) (product.Product, error) {
	p, ok := f.products[strings.ToUpper(sku)]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

type fakeOrderService struct {
	service.Service

	created []domain.Order
}

func (f *fakeOrderService) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)
	return order, nil
}

func newTestHandler(products map[string]product.Product, svc service.Service) *Handler {
	return &Handler{
		svc:         svc,
		productSvc:  &fakeProductService{products: products},
		snGenerator: sequencenumber.NewGenerator(),
		pickupCodes: pickupcode.NewGenerator(),
	}
}

func ledBulb() product.Product {
	return product.Product{
		ID:         11,
		SKU:        "LED-A19-9W",
		Name:       "9W A19 LED Bulb",
		PriceCents: 799,
		Stock:      40,
		Active:     true,
	}
}

func TestHandler_createOrder(t *testing.T) {
	t.Parallel()

	products := map[string]product.Product{"LED-A19-9W": ledBulb()}

	t.Run("snapshots authoritative prices and totals", func(t *testing.T) {
		t.Parallel()
		svc := &fakeOrderService{}
		h := newTestHandler(products, svc)

		order, err := h.createOrder(context.Background(), CheckoutReq{
			RequestID: "req-1",
			Items:     []CheckoutItem{{SKU: "LED-A19-9W", Quantity: 3}},
			Customer:  Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		}, 1001)
		require.NoError(t, err)

		assert.Equal(t, int64(2397), order.SubtotalCents)
		assert.Equal(t, int64(0), order.TaxCents)
		assert.Equal(t, int64(2397), order.TotalCents)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(799), order.Items[0].PriceCents)
		assert.Equal(t, int64(3), order.Items[0].Quantity)
		assert.Equal(t, "LED-A19-9W", order.Items[0].SKU)
		assert.NotEmpty(t, order.SN)
		assert.Len(t, order.Pickup.Code, 8)
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(products, &fakeOrderService{})

		_, err := h.createOrder(context.Background(), CheckoutReq{
			Customer: Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		}, 1001)
		assert.ErrorIs(t, err, errInvalidInput)
	})

	t.Run("unknown sku rejected", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(products, &fakeOrderService{})

		_, err := h.createOrder(context.Background(), CheckoutReq{
			Items:    []CheckoutItem{{SKU: "NO-SUCH-SKU", Quantity: 1}},
			Customer: Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		}, 1001)
		assert.ErrorIs(t, err, errInvalidInput)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(products, &fakeOrderService{})

		_, err := h.createOrder(context.Background(), CheckoutReq{
			Items:    []CheckoutItem{{SKU: "LED-A19-9W", Quantity: 0}},
			Customer: Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		}, 1001)
		assert.ErrorIs(t, err, errInvalidInput)
	})

	t.Run("quantity above stock rejected", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(products, &fakeOrderService{})

		_, err := h.createOrder(context.Background(), CheckoutReq{
			Items:    []CheckoutItem{{SKU: "LED-A19-9W", Quantity: 41}},
			Customer: Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		}, 1001)
		assert.ErrorIs(t, err, errInsufficientStock)
	})

	t.Run("bad email rejected", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(products, &fakeOrderService{})

		_, err := h.createOrder(context.Background(), CheckoutReq{
			Items:    []CheckoutItem{{SKU: "LED-A19-9W", Quantity: 1}},
			Customer: Customer{Name: "Dana Reyes", Email: "not-an-email"},
		}, 1001)
		assert.ErrorIs(t, err, errInvalidInput)
	})
}
