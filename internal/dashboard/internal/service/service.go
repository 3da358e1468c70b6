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

	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/order"
	"github.com/ecodeclub/voltmart/internal/product"
	"golang.org/x/sync/errgroup"
)

const (
	lowStockThreshold = 10
	recentAuditLimit  = 20
)

// Summary is the one-shot snapshot behind the admin landing page.
type Summary struct {
	RevenueCents   int64
	CountsByStatus map[order.Status]int64
	LowStock       []product.Product
	RecentAudit    []audit.AuditLog
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

func NewService(orderSvc order.Service, productSvc product.Service, auditSvc audit.Service) Service {
	return &service{
		orderSvc:   orderSvc,
		productSvc: productSvc,
		auditSvc:   auditSvc,
	}
}

type service struct {
	orderSvc   order.Service
	productSvc product.Service
	auditSvc   audit.Service
}

// Summary fans the three reads out; one slow source delays the page but a
// failing one fails it, which beats rendering half a dashboard.
func (s *service) Summary(ctx context.Context) (Summary, error) {
	var (
		stats    order.Stats
		lowStock []product.Product
		recent   []audit.AuditLog
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		stats, err = s.orderSvc.Stats(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		lowStock, err = s.productSvc.FindLowStock(ctx, lowStockThreshold)
		return err
	})
	eg.Go(func() error {
		var err error
		recent, _, err = s.auditSvc.List(ctx, audit.Filter{}, 0, recentAuditLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return Summary{
		RevenueCents:   stats.RevenueCents,
		CountsByStatus: stats.CountsByStatus,
		LowStock:       lowStock,
		RecentAudit:    recent,
	}, nil
}
