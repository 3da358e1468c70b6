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

	"github.com/ecodeclub/voltmart/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncIntentStatusJob)(nil)

// SyncIntentStatusJob reconciles payments whose webhook never arrived by
// polling the provider for intents still Initialized past the cutoff.
type SyncIntentStatusJob struct {
	svc     service.Service
	minutes int64
	limit   int
	l       *elog.Component
}

func NewSyncIntentStatusJob(svc service.Service, minutes int64, limit int) *SyncIntentStatusJob {
	return &SyncIntentStatusJob{
		svc:     svc,
		minutes: minutes,
		limit:   limit,
		l:       elog.DefaultLogger,
	}
}

func (s *SyncIntentStatusJob) Name() string {
	return "sync_intent_status_job"
}

func (s *SyncIntentStatusJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(time.Duration(-s.minutes) * time.Minute)
	// Synced rows leave the Initialized result set, so every page is
	// re-read from the front; offset only moves past rows that stayed
	// Initialized (provider not final yet, or the sync failed).
	offset := 0
	for {
		payments, err := s.svc.FindInitializedBefore(ctx, cutoff, offset, s.limit)
		if err != nil {
			return fmt.Errorf("find stale payments failed: %w", err)
		}
		for _, pmt := range payments {
			synced, er := s.svc.SyncIntentStatus(ctx, pmt)
			if er != nil {
				s.l.Error("sync payment intent failed",
					elog.FieldErr(er),
					elog.String("order_sn", pmt.OrderSN),
					elog.String("intent_id", pmt.IntentID))
			}
			if !synced {
				offset++
			}
		}
		if len(payments) < s.limit {
			return nil
		}
	}
}
