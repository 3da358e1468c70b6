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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const expectedSNLength = 32

func TestGenerateSequenceNumberWith(t *testing.T) {
	sng := NewGeneratorWith("VM",
		func(_ time.Time) int64 { return 1234554320123 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "minimum owner id is zero padded",
			input:    1,
			expected: "0001",
		},
		{
			name:     "only the last four digits are kept",
			input:    123456789,
			expected: "6789",
		},
		{
			name:     "maximum 4-digit owner id",
			input:    9999,
			expected: "9999",
		},
		{
			name:     "owner id ending in zeros",
			input:    123450000,
			expected: "0000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)

			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(sn, "VM"))
			assert.Contains(t, sn, tc.expected)
			assert.Equal(t, expectedSNLength, len(sn))
		})
	}
}

func TestGenerateSequenceNumber(t *testing.T) {
	sn, err := NewGenerator().Generate(123456789)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(sn, OrderPrefix))
	assert.Contains(t, sn, "6789")
	assert.Equal(t, expectedSNLength, len(sn))
}

func TestGenerateSequenceNumberUnique(t *testing.T) {
	sng := NewGenerator()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		sn, err := sng.Generate(42)
		assert.NoError(t, err)
		_, dup := seen[sn]
		assert.False(t, dup, "duplicate sequence number %s", sn)
		seen[sn] = struct{}{}
	}
}
