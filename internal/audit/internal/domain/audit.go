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

const (
	TargetTypeProduct   = "product"
	TargetTypeOrder     = "order"
	TargetTypeUser      = "user"
	TargetTypeInventory = "inventory"
	TargetTypeSystem    = "system"
)

// ActorSystem is the actor id recorded for provider-driven mutations that no
// staff member initiated.
const ActorSystem int64 = 0

// AuditLog is a write-once record of who changed what, when. Entries are never
// updated or deleted; the trail is the deletion surrogate for orders.
type AuditLog struct {
	ID         int64
	ActorID    int64
	ActorName  string
	Action     string
	TargetType string
	TargetID   string
	Before     map[string]any
	After      map[string]any
	IP         string
	UserAgent  string
	Ctime      int64
}

// Filter narrows admin audit queries. Zero values mean "any".
type Filter struct {
	ActorID    int64
	TargetType string
	TargetID   string
	Action     string
}
