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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/repository/dao"
)

var ErrDataNotFound = dao.ErrDataNotFound

type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) (int64, error)
	FindByIntentID(ctx context.Context, intentID string) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	UpdateStatusByIntentID(ctx context.Context, intentID string, status domain.PaymentStatus, method string) error
	FindInitializedBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Payment, error)
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) Create(ctx context.Context, pmt domain.Payment) (int64, error) {
	return p.dao.Insert(ctx, p.toEntity(pmt))
}

func (p *paymentRepository) FindByIntentID(ctx context.Context, intentID string) (domain.Payment, error) {
	res, err := p.dao.FindByIntentID(ctx, intentID)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	res, err := p.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) UpdateStatusByIntentID(ctx context.Context, intentID string, status domain.PaymentStatus, method string) error {
	return p.dao.UpdateStatusByIntentID(ctx, intentID, status.ToUint8(), method)
}

func (p *paymentRepository) FindInitializedBefore(ctx context.Context, cutoff time.Time, offset, limit int) ([]domain.Payment, error) {
	res, err := p.dao.FindInitializedBefore(ctx, cutoff.UnixMilli(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Payment) domain.Payment {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:          pmt.ID,
		OrderSn:     pmt.OrderSN,
		IntentID:    pmt.IntentID,
		AmountCents: pmt.AmountCents,
		Currency:    pmt.Currency,
		Status:      pmt.Status.ToUint8(),
		Method:      pmt.Method,
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          pmt.Id,
		OrderSN:     pmt.OrderSn,
		IntentID:    pmt.IntentID,
		AmountCents: pmt.AmountCents,
		Currency:    pmt.Currency,
		Status:      domain.PaymentStatus(pmt.Status),
		Method:      pmt.Method,
		Ctime:       pmt.Ctime,
		Utime:       pmt.Utime,
	}
}
