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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound      = gorm.ErrRecordNotFound
	ErrDuplicateSKU      = errors.New("duplicate product sku")
	ErrDuplicateSlug     = errors.New("duplicate category slug")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySKU(ctx context.Context, sku string) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	ListActive(ctx context.Context) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	FindLowStock(ctx context.Context, threshold int64) ([]Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int64) error
	RestoreStock(ctx context.Context, id int64, quantity int64) error
	ListCategories(ctx context.Context) ([]Category, error)
	SaveCategory(ctx context.Context, c Category) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	if isUniqueConstraintErr(err) {
		return 0, ErrDuplicateSKU
	}
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"sku":                    p.SKU,
			"name":                   p.Name,
			"description":            p.Description,
			"brand":                  p.Brand,
			"price_cents":            p.PriceCents,
			"compare_at_price_cents": p.CompareAtPriceCents,
			"images":                 p.Images,
			"category_ids":           p.CategoryIDs,
			"featured":               p.Featured,
			"active":                 p.Active,
			"utime":                  p.Utime,
		}).Error
	if isUniqueConstraintErr(err) {
		return ErrDuplicateSKU
	}
	return err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindBySKU(ctx context.Context, sku string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sku = ?", sku).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListActive(ctx context.Context) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("active = ?", true).
		Order("featured DESC, ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListAll(ctx context.Context) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Order("ctime DESC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindLowStock(ctx context.Context, threshold int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("active = ? AND stock < ?", true, threshold).
		Order("stock ASC").
		Find(&res).Error
	return res, err
}

// DecrementStock is a single conditional UPDATE so stock can never go
// negative regardless of concurrent callers.
func (d *ProductGORMDAO) DecrementStock(ctx context.Context, id int64, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (d *ProductGORMDAO) RestoreStock(ctx context.Context, id int64, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) ListCategories(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Where("active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) SaveCategory(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
	}
	err := d.db.WithContext(ctx).Save(&c).Error
	if isUniqueConstraintErr(err) {
		return 0, ErrDuplicateSlug
	}
	return c.Id, err
}

func isUniqueConstraintErr(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type Product struct {
	Id                  int64          `gorm:"primaryKey,autoIncrement"`
	SKU                 string         `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:uniq_product_sku"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Description         string         `gorm:"not null"`
	Brand               string         `gorm:"type:varchar(128);not null;default:''"`
	PriceCents          int64          `gorm:"not null;comment:unit price in cents, 999 means $9.99"`
	CompareAtPriceCents int64          `gorm:"not null;default:0"`
	Stock               int64          `gorm:"not null;default:0"`
	Images              sql.NullString `gorm:"comment:JSON array of CDN paths"`
	CategoryIDs         sql.NullString `gorm:"column:category_ids;comment:JSON array of category ids"`
	Featured            bool           `gorm:"not null;default:false;index:idx_featured"`
	Active              bool           `gorm:"not null;default:true;index:idx_active"`
	Ctime               int64
	Utime               int64
}

type Category struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Name      string `gorm:"type:varchar(128);not null"`
	Slug      string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_category_slug"`
	SortOrder int64  `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true"`
	Ctime     int64
	Utime     int64
}
