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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrProductNotCached = errors.New("product not cached")

type ProductCache interface {
	SetProduct(ctx context.Context, p domain.Product) error
	GetProduct(ctx context.Context, sku string) (domain.Product, error)
	DelProduct(ctx context.Context, sku string) error
}

func NewProductCache(ec ecache.Cache) ProductCache {
	return &productCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "product:",
		},
	}
}

type productCache struct {
	ec ecache.Cache
}

func (c *productCache) SetProduct(ctx context.Context, p domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal product failed")
	}
	return c.ec.Set(ctx, c.productKey(p.SKU), string(data), expiration)
}

func (c *productCache) GetProduct(ctx context.Context, sku string) (domain.Product, error) {
	val := c.ec.Get(ctx, c.productKey(sku))
	if val.KeyNotFound() {
		return domain.Product{}, ErrProductNotCached
	}
	if val.Err != nil {
		return domain.Product{}, val.Err
	}
	var p domain.Product
	err := json.Unmarshal([]byte(val.Val.(string)), &p)
	return p, errors.Wrap(err, "unmarshal product failed")
}

func (c *productCache) DelProduct(ctx context.Context, sku string) error {
	_, err := c.ec.Delete(ctx, c.productKey(sku))
	return err
}

func (c *productCache) productKey(sku string) string {
	return fmt.Sprintf("detail:%s", sku)
}
