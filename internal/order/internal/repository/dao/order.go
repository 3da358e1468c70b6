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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrConcurrentStatusChange is returned when a conditional status update
	// matched no row: someone else moved the order first.
	ErrConcurrentStatusChange = errors.New("order status changed concurrently")
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListByStatuses(ctx context.Context, statuses []uint8, offset, limit int) ([]Order, error)
	CountByStatuses(ctx context.Context, statuses []uint8) (int64, error)
	// UpdateStatus flips the status only when the row still holds the
	// expected one, so concurrent webhooks and staff edits cannot double
	// apply a transition.
	UpdateStatus(ctx context.Context, orderID int64, from, to uint8, updates map[string]any) error
	UpdatePaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus uint8, method string) error
	FindPendingBefore(ctx context.Context, ctime int64, offset, limit int) ([]Order, error)
	CountOrdersByStatuses(ctx context.Context) (map[uint8]int64, error)
	SumTotalByStatuses(ctx context.Context, statuses []uint8) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.Id, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByPaymentIntentID(ctx context.Context, intentID string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("payment_intent_id = ?", intentID).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByStatuses(ctx context.Context, statuses []uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("status IN ?", statuses).
		Order("ctime ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByStatuses(ctx context.Context, statuses []uint8) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status IN ?", statuses).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, orderID int64, from, to uint8, updates map[string]any) error {
	if updates == nil {
		updates = make(map[string]any, 2)
	}
	updates["status"] = to
	updates["utime"] = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentStatusChange
	}
	return nil
}

func (d *OrderGORMDAO) UpdatePaymentInfo(ctx context.Context, orderID int64, intentID, provider string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_intent_id": intentID,
			"payment_provider":  provider,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus uint8, method string) error {
	updates := map[string]any{
		"payment_status": paymentStatus,
		"utime":          time.Now().UnixMilli(),
	}
	if method != "" {
		updates["payment_method"] = method
	}
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

func (d *OrderGORMDAO) FindPendingBefore(ctx context.Context, ctime int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", 1, ctime).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountOrdersByStatuses(ctx context.Context) (map[uint8]int64, error) {
	var rows []struct {
		Status uint8
		Total  int64
	}
	err := d.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint8]int64, len(rows))
	for _, row := range rows {
		res[row.Status] = row.Total
	}
	return res, nil
}

func (d *OrderGORMDAO) SumTotalByStatuses(ctx context.Context, statuses []uint8) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Select("COALESCE(SUM(total_cents), 0)").
		Where("status IN ?", statuses).
		Scan(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	SN      string `gorm:"column:sn;type:varchar(64);not null;uniqueIndex:uniq_order_sn"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:1=pending 2=paid 3=preparing 4=ready 5=picked_up 6=refunded 7=cancelled"`

	SubtotalCents int64 `gorm:"not null;comment:in cents, 999 means $9.99"`
	TaxCents      int64 `gorm:"not null;default:0"`
	TotalCents    int64 `gorm:"not null"`

	PaymentProvider string `gorm:"type:varchar(32);not null;default:'stripe'"`
	PaymentIntentID string `gorm:"column:payment_intent_id;type:varchar(255);not null;default:'';index:idx_payment_intent_id"`
	PaymentStatus   uint8  `gorm:"type:tinyint unsigned;not null;default:1"`
	PaymentMethod   string `gorm:"type:varchar(64);not null;default:''"`

	CustomerName  string `gorm:"type:varchar(128);not null;default:''"`
	CustomerEmail string `gorm:"type:varchar(255);not null;default:''"`
	CustomerPhone string `gorm:"type:varchar(32);not null;default:''"`

	PickupCode         string `gorm:"type:varchar(16);not null;default:''"`
	PickupInstructions string `gorm:"type:varchar(512);not null;default:''"`
	ReadyAt            int64  `gorm:"comment:unix milli, 0 until Ready"`
	PickedUpAt         int64  `gorm:"comment:unix milli, 0 until PickedUp"`
	PickedUpBy         string `gorm:"type:varchar(128);not null;default:''"`

	Notes string `gorm:"type:varchar(1024);not null;default:''"`
	Ctime int64  `gorm:"index:idx_ctime"`
	Utime int64
}

type OrderItem struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	OrderId    int64  `gorm:"not null;index:idx_order_id"`
	ProductId  int64  `gorm:"not null"`
	SKU        string `gorm:"column:sku;type:varchar(64);not null"`
	Name       string `gorm:"type:varchar(255);not null"`
	PriceCents int64  `gorm:"not null;comment:unit price snapshot in cents"`
	Quantity   int64  `gorm:"not null"`
	Ctime      int64
	Utime      int64
}
