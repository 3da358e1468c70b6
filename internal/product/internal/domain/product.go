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

// Product is a purchasable catalog item. Prices are cents, 999 means $9.99.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Brand       string

	PriceCents int64
	// CompareAtPriceCents is the strike-through price, 0 when not on sale.
	CompareAtPriceCents int64
	Stock               int64

	Images      []string
	CategoryIDs []int64

	Featured bool
	// Active gates every public read and checkout. Inactive products remain
	// visible only to staff.
	Active bool

	Ctime int64
	Utime int64
}

type Category struct {
	ID        int64
	Name      string
	Slug      string
	SortOrder int64
	Active    bool
}
