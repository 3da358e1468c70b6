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
	"time"

	"github.com/ecodeclub/ecache"
)

// ProcessedEventCache remembers provider event ids that have already been
// handled so redelivered webhooks become no-ops.
type ProcessedEventCache interface {
	// SetNXEventKey returns false when the event id was seen before.
	SetNXEventKey(ctx context.Context, eventID string) (bool, error)
	DelEventKey(ctx context.Context, eventID string) (int64, error)
}

type processedEventECache struct {
	ec ecache.Cache
}

func NewProcessedEventCache(ec ecache.Cache) ProcessedEventCache {
	return &processedEventECache{
		ec: &ecache.NamespaceCache{
			Namespace: "payment:",
			C:         ec,
		},
	}
}

func (q *processedEventECache) SetNXEventKey(ctx context.Context, eventID string) (bool, error) {
	return q.ec.SetNX(ctx, q.eventKey(eventID), 1, 24*time.Hour)
}

func (q *processedEventECache) DelEventKey(ctx context.Context, eventID string) (int64, error) {
	return q.ec.Delete(ctx, q.eventKey(eventID))
}

func (q *processedEventECache) eventKey(eventID string) string {
	return "event:" + eventID
}
