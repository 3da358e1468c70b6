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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	allowed := map[OrderStatus][]OrderStatus{
		StatusPending:   {StatusPaid, StatusCancelled},
		StatusPaid:      {StatusPreparing, StatusRefunded, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusPickedUp},
	}
	all := []OrderStatus{
		StatusPending, StatusPaid, StatusPreparing, StatusReady,
		StatusPickedUp, StatusRefunded, StatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_RefundOnlyFromPaid(t *testing.T) {
	t.Parallel()
	for _, from := range []OrderStatus{
		StatusPending, StatusPreparing, StatusReady,
		StatusPickedUp, StatusRefunded, StatusCancelled,
	} {
		assert.False(t, from.CanTransitionTo(StatusRefunded), "from %s", from)
	}
	assert.True(t, StatusPaid.CanTransitionTo(StatusRefunded))
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPickedUp.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
}
