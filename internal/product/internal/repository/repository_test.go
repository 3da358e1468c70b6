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
	"testing"

	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product/internal/repository/cache"
	"github.com/ecodeclub/voltmart/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductDAO struct {
	dao.ProductDAO
	bySKU    map[string]dao.Product
	byID     map[int64]dao.Product
	skuCalls int
}

func (f *fakeProductDAO) FindBySKU(_ context.Context, sku string) (dao.Product, error) {
	f.skuCalls++
	p, ok := f.bySKU[sku]
	if !ok {
		return dao.Product{}, dao.ErrDataNotFound
	}
	return p, nil
}

func (f *fakeProductDAO) FindByID(_ context.Context, id int64) (dao.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return dao.Product{}, dao.ErrDataNotFound
	}
	return p, nil
}

func (f *fakeProductDAO) Update(_ context.Context, p dao.Product) error {
	f.byID[p.Id] = p
	return nil
}

type fakeProductCache struct {
	entries map[string]domain.Product
	deleted []string
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{entries: make(map[string]domain.Product)}
}

func (f *fakeProductCache) SetProduct(_ context.Context, p domain.Product) error {
	f.entries[p.SKU] = p
	return nil
}

func (f *fakeProductCache) GetProduct(_ context.Context, sku string) (domain.Product, error) {
	p, ok := f.entries[sku]
	if !ok {
		return domain.Product{}, cache.ErrProductNotCached
	}
	return p, nil
}

func (f *fakeProductCache) DelProduct(_ context.Context, sku string) error {
	f.deleted = append(f.deleted, sku)
	delete(f.entries, sku)
	return nil
}

func TestProductRepository_FindBySKU_CacheAside(t *testing.T) {
	t.Parallel()
	d := &fakeProductDAO{bySKU: map[string]dao.Product{
		"LED-A19-9W": {Id: 1, SKU: "LED-A19-9W", Name: "9W A19 LED Bulb", PriceCents: 799, Stock: 40, Active: true},
	}}
	c := newFakeProductCache()
	repo := NewProductRepository(d, c)

	p, err := repo.FindBySKU(context.Background(), "LED-A19-9W")
	require.NoError(t, err)
	assert.Equal(t, int64(799), p.PriceCents)
	assert.Equal(t, 1, d.skuCalls)

	// second read is served from cache
	p, err = repo.FindBySKU(context.Background(), "LED-A19-9W")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 1, d.skuCalls)
}

func TestProductRepository_Update_InvalidatesOldSKUOnRename(t *testing.T) {
	t.Parallel()
	d := &fakeProductDAO{byID: map[int64]dao.Product{
		1: {Id: 1, SKU: "LED-A19-9W", Name: "9W A19 LED Bulb", PriceCents: 799, Stock: 40, Active: true},
	}}
	c := newFakeProductCache()
	c.entries["LED-A19-9W"] = domain.Product{ID: 1, SKU: "LED-A19-9W", PriceCents: 799}
	repo := NewProductRepository(d, c)

	err := repo.Update(context.Background(), domain.Product{
		ID: 1, SKU: "LED-A19-10W", Name: "10W A19 LED Bulb", PriceCents: 899, Stock: 40, Active: true,
	})
	require.NoError(t, err)

	// the old key must not keep serving the stale product
	assert.Contains(t, c.deleted, "LED-A19-9W")
	assert.Contains(t, c.deleted, "LED-A19-10W")
	assert.Empty(t, c.entries)
}

func TestProductRepository_Update_SameSKUInvalidatesOnce(t *testing.T) {
	t.Parallel()
	d := &fakeProductDAO{byID: map[int64]dao.Product{
		1: {Id: 1, SKU: "LED-A19-9W", Name: "9W A19 LED Bulb", PriceCents: 799, Stock: 40, Active: true},
	}}
	c := newFakeProductCache()
	repo := NewProductRepository(d, c)

	err := repo.Update(context.Background(), domain.Product{
		ID: 1, SKU: "LED-A19-9W", Name: "9W A19 LED Bulb", PriceCents: 749, Stock: 40, Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"LED-A19-9W"}, c.deleted)
}
