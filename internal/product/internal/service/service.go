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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product/internal/repository"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateSKU      = repository.ErrDuplicateSKU
	ErrDuplicateSlug     = repository.ErrDuplicateSlug
	ErrInsufficientStock = repository.ErrInsufficientStock
	ErrInvalidProduct    = errors.New("invalid product")
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// ListActive and FindBySKU serve the public storefront and only ever
	// surface active products.
	ListActive(ctx context.Context) ([]domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (domain.Product, error)
	// FindByIDs serves checkout; the caller decides how to treat inactive
	// entries because it needs to distinguish them from missing ones.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	ListAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindLowStock(ctx context.Context, threshold int64) ([]domain.Product, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)

	DecrementStock(ctx context.Context, id int64, quantity int64) error
	RestoreStock(ctx context.Context, id int64, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) FindBySKU(ctx context.Context, sku string) (domain.Product, error) {
	p, err := s.repo.FindBySKU(ctx, strings.ToUpper(strings.TrimSpace(sku)))
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	if !p.Active {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	if err := s.validate(p); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	if err := s.validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) validate(p domain.Product) error {
	if p.SKU == "" || p.Name == "" || p.PriceCents <= 0 || p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *service) FindLowStock(ctx context.Context, threshold int64) ([]domain.Product, error) {
	return s.repo.FindLowStock(ctx, threshold)
}

func (s *service) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return s.repo.SaveCategory(ctx, c)
}

func (s *service) DecrementStock(ctx context.Context, id int64, quantity int64) error {
	return s.repo.DecrementStock(ctx, id, quantity)
}

func (s *service) RestoreStock(ctx context.Context, id int64, quantity int64) error {
	return s.repo.RestoreStock(ctx, id, quantity)
}
