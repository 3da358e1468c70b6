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
	"github.com/ecodeclub/voltmart/internal/order/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product"
	"github.com/gotomicro/ego/core/elog"
)

// StockMover applies the inventory side effects of payment transitions. Both
// the webhook consumer and the counter-settlement path go through it, so an
// oversold line always lands in the audit trail the same way.
type StockMover struct {
	productSvc product.Service
	auditSvc   audit.Service
	logger     *elog.Component
}

func NewStockMover(productSvc product.Service, auditSvc audit.Service) *StockMover {
	return &StockMover{
		productSvc: productSvc,
		auditSvc:   auditSvc,
		logger:     elog.DefaultLogger,
	}
}

// Decrement applies the atomic per-item decrements for a freshly paid order.
// An insufficient row means the stock ran out between checkout and payment;
// the order still goes through and staff resolve it from the needs-attention
// queue via the inventory.oversold entry.
func (m *StockMover) Decrement(ctx context.Context, order domain.Order) {
	for _, item := range order.Items {
		err := m.productSvc.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			m.logger.Error("decrement stock failed",
				elog.String("order_sn", order.SN),
				elog.Int64("product_id", item.ProductID),
				elog.Int64("quantity", item.Quantity),
				elog.FieldErr(err))
			m.auditSvc.Log(ctx, audit.AuditLog{
				ActorID:    audit.ActorSystem,
				Action:     "inventory.oversold",
				TargetType: audit.TargetTypeInventory,
				TargetID:   item.SKU,
				After: map[string]any{
					"orderSN":  order.SN,
					"quantity": item.Quantity,
				},
			})
		}
	}
}

// Restore reverses the Paid decrement after a refund.
func (m *StockMover) Restore(ctx context.Context, order domain.Order) {
	for _, item := range order.Items {
		if err := m.productSvc.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			m.logger.Error("restore stock failed",
				elog.String("order_sn", order.SN),
				elog.Int64("product_id", item.ProductID),
				elog.FieldErr(err))
		}
	}
}
