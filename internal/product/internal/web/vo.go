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

import "github.com/ecodeclub/voltmart/internal/product/internal/domain"

type SKUReq struct {
	SKU string `json:"sku"`
}

type ProductSaveReq struct {
	Product Product `json:"product"`
}

type ProductSaveResp struct {
	ID int64 `json:"id"`
}

type ProductListResp struct {
	Products []Product `json:"products"`
}

type CategoryListResp struct {
	Categories []Category `json:"categories"`
}

type CategorySaveReq struct {
	Category Category `json:"category"`
}

type LowStockReq struct {
	Threshold int64 `json:"threshold"`
}

type Product struct {
	ID                  int64    `json:"id,omitempty"`
	SKU                 string   `json:"sku"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Brand               string   `json:"brand,omitempty"`
	PriceCents          int64    `json:"priceCents"`
	CompareAtPriceCents int64    `json:"compareAtPriceCents,omitempty"`
	Stock               int64    `json:"stock"`
	Images              []string `json:"images,omitempty"`
	CategoryIDs         []int64  `json:"categoryIds,omitempty"`
	Featured            bool     `json:"featured,omitempty"`
	Active              bool     `json:"active"`
}

type Category struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int64  `json:"sortOrder,omitempty"`
	Active    bool   `json:"active"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		Description:         p.Description,
		Brand:               p.Brand,
		PriceCents:          p.PriceCents,
		CompareAtPriceCents: p.CompareAtPriceCents,
		Stock:               p.Stock,
		Images:              p.Images,
		CategoryIDs:         p.CategoryIDs,
		Featured:            p.Featured,
		Active:              p.Active,
	}
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		Description:         p.Description,
		Brand:               p.Brand,
		PriceCents:          p.PriceCents,
		CompareAtPriceCents: p.CompareAtPriceCents,
		Stock:               p.Stock,
		Images:              p.Images,
		CategoryIDs:         p.CategoryIDs,
		Featured:            p.Featured,
		Active:              p.Active,
	}
}

func newCategory(c domain.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		SortOrder: c.SortOrder,
		Active:    c.Active,
	}
}
