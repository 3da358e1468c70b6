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
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product/internal/repository/cache"
	"github.com/ecodeclub/voltmart/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDataNotFound      = dao.ErrDataNotFound
	ErrDuplicateSKU      = dao.ErrDuplicateSKU
	ErrDuplicateSlug     = dao.ErrDuplicateSlug
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	FindLowStock(ctx context.Context, threshold int64) ([]domain.Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int64) error
	RestoreStock(ctx context.Context, id int64, quantity int64) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
}

func NewProductRepository(d dao.ProductDAO, c cache.ProductCache) ProductRepository {
	return &productRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type productRepository struct {
	dao    dao.ProductDAO
	cache  cache.ProductCache
	logger *elog.Component
}

func (p *productRepository) Create(ctx context.Context, prd domain.Product) (int64, error) {
	return p.dao.Create(ctx, p.toEntity(prd))
}

func (p *productRepository) Update(ctx context.Context, prd domain.Product) error {
	prev, err := p.dao.FindByID(ctx, prd.ID)
	if err != nil {
		return err
	}
	if err = p.dao.Update(ctx, p.toEntity(prd)); err != nil {
		return err
	}
	p.invalidate(ctx, prd.SKU)
	if prev.SKU != prd.SKU {
		// a SKU rename must not leave the old key serving the stale product
		p.invalidate(ctx, prev.SKU)
	}
	return nil
}

func (p *productRepository) invalidate(ctx context.Context, sku string) {
	if err := p.cache.DelProduct(ctx, sku); err != nil {
		p.logger.Error("invalidate product cache failed",
			elog.String("sku", sku), elog.FieldErr(err))
	}
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

// FindBySKU is the hot detail path and is cache-aside. Cache failures fall
// through to the database.
func (p *productRepository) FindBySKU(ctx context.Context, sku string) (domain.Product, error) {
	if res, err := p.cache.GetProduct(ctx, sku); err == nil {
		return res, nil
	}
	res, err := p.dao.FindBySKU(ctx, sku)
	if err != nil {
		return domain.Product{}, err
	}
	prd := p.toDomain(res)
	if er := p.cache.SetProduct(ctx, prd); er != nil {
		p.logger.Error("set product cache failed",
			elog.String("sku", sku), elog.FieldErr(er))
	}
	return prd, nil
}

func (p *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	res, err := p.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	res, err := p.dao.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	res, err := p.dao.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) FindLowStock(ctx context.Context, threshold int64) ([]domain.Product, error) {
	res, err := p.dao.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) DecrementStock(ctx context.Context, id int64, quantity int64) error {
	err := p.dao.DecrementStock(ctx, id, quantity)
	if err != nil {
		return err
	}
	p.invalidateByID(ctx, id)
	return nil
}

func (p *productRepository) RestoreStock(ctx context.Context, id int64, quantity int64) error {
	err := p.dao.RestoreStock(ctx, id, quantity)
	if err != nil {
		return err
	}
	p.invalidateByID(ctx, id)
	return nil
}

func (p *productRepository) invalidateByID(ctx context.Context, id int64) {
	res, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return
	}
	if er := p.cache.DelProduct(ctx, res.SKU); er != nil {
		p.logger.Error("invalidate product cache failed",
			elog.String("sku", res.SKU), elog.FieldErr(er))
	}
}

func (p *productRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	res, err := p.dao.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Category) domain.Category {
		return domain.Category{
			ID:        src.Id,
			Name:      src.Name,
			Slug:      src.Slug,
			SortOrder: src.SortOrder,
			Active:    src.Active,
		}
	}), nil
}

func (p *productRepository) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return p.dao.SaveCategory(ctx, dao.Category{
		Id:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		SortOrder: c.SortOrder,
		Active:    c.Active,
	})
}

func (p *productRepository) toEntity(prd domain.Product) dao.Product {
	return dao.Product{
		Id:                  prd.ID,
		SKU:                 prd.SKU,
		Name:                prd.Name,
		Description:         prd.Description,
		Brand:               prd.Brand,
		PriceCents:          prd.PriceCents,
		CompareAtPriceCents: prd.CompareAtPriceCents,
		Stock:               prd.Stock,
		Images:              sqlx.NewNullString(p.marshal(prd.Images)),
		CategoryIDs:         sqlx.NewNullString(p.marshal(prd.CategoryIDs)),
		Featured:            prd.Featured,
		Active:              prd.Active,
	}
}

func (p *productRepository) toDomain(prd dao.Product) domain.Product {
	res := domain.Product{
		ID:                  prd.Id,
		SKU:                 prd.SKU,
		Name:                prd.Name,
		Description:         prd.Description,
		Brand:               prd.Brand,
		PriceCents:          prd.PriceCents,
		CompareAtPriceCents: prd.CompareAtPriceCents,
		Stock:               prd.Stock,
		Featured:            prd.Featured,
		Active:              prd.Active,
		Ctime:               prd.Ctime,
		Utime:               prd.Utime,
	}
	p.unmarshal(prd.Images.String, &res.Images)
	p.unmarshal(prd.CategoryIDs.String, &res.CategoryIDs)
	return res
}

func (p *productRepository) marshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func (p *productRepository) unmarshal(data string, dst any) {
	if data == "" {
		return
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		p.logger.Error("decode product field failed", elog.FieldErr(err))
	}
}
