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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	FindByIntentID(ctx context.Context, intentID string) (Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	UpdateStatusByIntentID(ctx context.Context, intentID string, status uint8, method string) error
	FindInitializedBefore(ctx context.Context, utime int64, offset, limit int) ([]Payment, error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (g *PaymentGORMDAO) FindByIntentID(ctx context.Context, intentID string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("intent_id = ?", intentID).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdateStatusByIntentID(ctx context.Context, intentID string, status uint8, method string) error {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if method != "" {
		updates["method"] = method
	}
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("intent_id = ?", intentID).
		Updates(updates).Error
}

func (g *PaymentGORMDAO) FindInitializedBefore(ctx context.Context, utime int64, offset, limit int) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("status = ? AND utime < ?", 1, utime).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}

type Payment struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	OrderSn     string `gorm:"column:order_sn;type:varchar(64);not null;uniqueIndex:uniq_payment_order_sn"`
	IntentID    string `gorm:"column:intent_id;type:varchar(255);not null;uniqueIndex:uniq_payment_intent_id"`
	AmountCents int64  `gorm:"not null;comment:amount in cents, 999 means $9.99"`
	Currency    string `gorm:"type:varchar(8);not null;default:'usd'"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=initialized 2=succeeded 3=failed 4=refunded"`
	Method      string `gorm:"type:varchar(64);not null;default:''"`
	Ctime       int64
	Utime       int64
}
