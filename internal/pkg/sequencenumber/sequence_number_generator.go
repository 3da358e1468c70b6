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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TimestampGenerateFunc produces the timestamp part of a sequence number.
type TimestampGenerateFunc func(time.Time) int64

// ShortUUIDGenerateFunc produces the random tail of a sequence number.
type ShortUUIDGenerateFunc func() string

const (
	// OrderPrefix marks sequence numbers issued for orders.
	OrderPrefix = "VM"

	snLength = 32
)

// Generator produces human-readable order numbers that are unique without
// coordination: prefix + millisecond timestamp + last four digits of the
// owner id + a short UUID tail, truncated to a fixed width. The orders table
// keeps a uniqueness index on the column as a backstop.
type Generator struct {
	prefix           string
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

// NewGeneratorWith creates a Generator with explicit timestamp and UUID
// sources, used by tests.
func NewGeneratorWith(prefix string, timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		prefix:           prefix,
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

// NewGenerator creates a Generator for order numbers.
func NewGenerator() *Generator {
	return NewGeneratorWith(OrderPrefix,
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate builds a sequence number for the given owner id.
func (s *Generator) Generate(id int64) (string, error) {
	timestamp := s.timestampGenFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", id%10000)
	uuid := s.shortUUIDGenFunc()
	return fmt.Sprintf("%s%d%s%s", s.prefix, timestamp, lastFour, uuid)[:snLength], nil
}
