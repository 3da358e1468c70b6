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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/voltmart/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob cancels orders stuck in Pending past the cutoff.
// The close is a conditional update, so an order paid between the page read
// and the close survives untouched.
type CloseExpiredOrdersJob struct {
	svc     service.Service
	minutes int64
	limit   int
	l       *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, minutes int64, limit int) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:     svc,
		minutes: minutes,
		limit:   limit,
		l:       elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "close_expired_orders_job"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(time.Duration(-c.minutes) * time.Minute)
	// Closed rows leave the Pending result set, so every page is re-read
	// from the front; offset only moves past rows that refused to close.
	offset := 0
	for {
		orders, err := c.svc.FindPendingBefore(ctx, cutoff, offset, c.limit)
		if err != nil {
			return fmt.Errorf("find expired orders failed: %w", err)
		}
		for _, order := range orders {
			if err = c.svc.ClosePendingOrder(ctx, order.ID); err != nil {
				c.l.Error("close expired order failed",
					elog.FieldErr(err),
					elog.String("order_sn", order.SN))
				offset++
			}
		}
		if len(orders) < c.limit {
			return nil
		}
	}
}
