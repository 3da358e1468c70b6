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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/order/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDataNotFound           = dao.ErrDataNotFound
	ErrConcurrentStatusChange = dao.ErrConcurrentStatusChange
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListByStatuses(ctx context.Context, statuses []domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus, updates map[string]any) error
	UpdatePaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus uint8, method string) error
	FindPendingBefore(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error)
	CountOrdersByStatuses(ctx context.Context) (map[domain.OrderStatus]int64, error)
	SumTotalByStatuses(ctx context.Context, statuses []domain.OrderStatus) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toEntity(order), o.toItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Order, error) {
	order, err := o.d.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) withItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = o.d.ListByBuyerID(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = o.d.CountByBuyerID(ctx, buyerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return o.toDomains(orders), total, nil
}

func (o *orderRepository) ListByStatuses(ctx context.Context, statuses []domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	raw := slice.Map(statuses, func(idx int, src domain.OrderStatus) uint8 {
		return src.ToUint8()
	})
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = o.d.ListByStatuses(ctx, raw, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = o.d.CountByStatuses(ctx, raw)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return o.toDomains(orders), total, nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus, updates map[string]any) error {
	return o.d.UpdateStatus(ctx, orderID, from.ToUint8(), to.ToUint8(), updates)
}

func (o *orderRepository) UpdatePaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error {
	return o.d.UpdatePaymentInfo(ctx, orderID, intentID, provider)
}

func (o *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus uint8, method string) error {
	return o.d.UpdatePaymentStatus(ctx, orderID, paymentStatus, method)
}

func (o *orderRepository) FindPendingBefore(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.FindPendingBefore(ctx, ctime, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) CountOrdersByStatuses(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	counts, err := o.d.CountOrdersByStatuses(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.OrderStatus]int64, len(counts))
	for status, total := range counts {
		res[domain.OrderStatus(status)] = total
	}
	return res, nil
}

func (o *orderRepository) SumTotalByStatuses(ctx context.Context, statuses []domain.OrderStatus) (int64, error) {
	return o.d.SumTotalByStatuses(ctx, slice.Map(statuses, func(idx int, src domain.OrderStatus) uint8 {
		return src.ToUint8()
	}))
}

func (o *orderRepository) toDomains(orders []dao.Order) []domain.Order {
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	})
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                 order.ID,
		SN:                 order.SN,
		BuyerId:            order.BuyerID,
		Status:             order.Status.ToUint8(),
		SubtotalCents:      order.SubtotalCents,
		TaxCents:           order.TaxCents,
		TotalCents:         order.TotalCents,
		PaymentProvider:    order.Payment.Provider,
		PaymentIntentID:    order.Payment.IntentID,
		PaymentStatus:      order.Payment.Status,
		PaymentMethod:      order.Payment.Method,
		CustomerName:       order.Customer.Name,
		CustomerEmail:      order.Customer.Email,
		CustomerPhone:      order.Customer.Phone,
		PickupCode:         order.Pickup.Code,
		PickupInstructions: order.Pickup.Instructions,
		ReadyAt:            order.Pickup.ReadyAt,
		PickedUpAt:         order.Pickup.PickedUpAt,
		PickedUpBy:         order.Pickup.PickedUpBy,
		Notes:              order.Notes,
	}
}

func (o *orderRepository) toItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:  src.ProductID,
			SKU:        src.SKU,
			Name:       src.Name,
			PriceCents: src.PriceCents,
			Quantity:   src.Quantity,
		}
	})
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:            order.Id,
		SN:            order.SN,
		BuyerID:       order.BuyerId,
		Status:        domain.OrderStatus(order.Status),
		SubtotalCents: order.SubtotalCents,
		TaxCents:      order.TaxCents,
		TotalCents:    order.TotalCents,
		Payment: domain.PaymentInfo{
			Provider: order.PaymentProvider,
			IntentID: order.PaymentIntentID,
			Status:   order.PaymentStatus,
			Method:   order.PaymentMethod,
		},
		Customer: domain.Customer{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
		Pickup: domain.Pickup{
			Code:         order.PickupCode,
			Instructions: order.PickupInstructions,
			ReadyAt:      order.ReadyAt,
			PickedUpAt:   order.PickedUpAt,
			PickedUpBy:   order.PickedUpBy,
		},
		Notes: order.Notes,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID:  src.ProductId,
				SKU:        src.SKU,
				Name:       src.Name,
				PriceCents: src.PriceCents,
				Quantity:   src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
