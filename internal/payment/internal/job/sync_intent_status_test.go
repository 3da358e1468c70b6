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
	"testing"
	"time"

	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSyncService pages over the still-Initialized set the way the DAO does:
// a synced payment drops out of subsequent pages, a non-final one stays.
type fakeSyncService struct {
	service.Service

	payments  []domain.Payment
	nonFinal  map[string]bool
	syncedSet map[string]bool
	synced    []string
}

func newFakeSyncService(n int) *fakeSyncService {
	f := &fakeSyncService{
		nonFinal:  make(map[string]bool),
		syncedSet: make(map[string]bool),
	}
	for i := 1; i <= n; i++ {
		f.payments = append(f.payments, domain.Payment{
			ID:       int64(i),
			OrderSN:  fmt.Sprintf("VM2026010100%04d", i),
			IntentID: fmt.Sprintf("pi_%d", i),
			Status:   domain.PaymentStatusInitialized,
		})
	}
	return f
}

func (f *fakeSyncService) FindInitializedBefore(_ context.Context, _ time.Time, offset, limit int) ([]domain.Payment, error) {
	var stale []domain.Payment
	for _, pmt := range f.payments {
		if !f.syncedSet[pmt.IntentID] {
			stale = append(stale, pmt)
		}
	}
	if offset >= len(stale) {
		return nil, nil
	}
	end := offset + limit
	if end > len(stale) {
		end = len(stale)
	}
	return stale[offset:end], nil
}

func (f *fakeSyncService) SyncIntentStatus(_ context.Context, pmt domain.Payment) (bool, error) {
	if f.nonFinal[pmt.IntentID] {
		return false, nil
	}
	f.syncedSet[pmt.IntentID] = true
	f.synced = append(f.synced, pmt.IntentID)
	return true, nil
}

func TestSyncIntentStatusJob_SyncsEveryPage(t *testing.T) {
	t.Parallel()
	svc := newFakeSyncService(25)
	job := NewSyncIntentStatusJob(svc, 10, 10)

	require.NoError(t, job.Run(context.Background()))

	assert.Len(t, svc.synced, 25)
}

func TestSyncIntentStatusJob_SkipsIntentsStillInFlight(t *testing.T) {
	t.Parallel()
	svc := newFakeSyncService(12)
	svc.nonFinal["pi_2"] = true
	svc.nonFinal["pi_9"] = true
	job := NewSyncIntentStatusJob(svc, 10, 5)

	require.NoError(t, job.Run(context.Background()))

	assert.Len(t, svc.synced, 10)
	assert.False(t, svc.syncedSet["pi_2"])
	assert.False(t, svc.syncedSet["pi_9"])
}
