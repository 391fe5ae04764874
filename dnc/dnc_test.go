// Copyright 2025 go-dnc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dnc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessTotalOrder(t *testing.T) {
	nan := math.NaN()
	assert.True(t, Less(nan, -1e300))
	assert.False(t, Less(nan, nan))
	assert.False(t, Less(1.0, nan))
	assert.True(t, Less(1, 2))
	assert.True(t, Less("a", "b"))
	assert.Equal(t, 0, Compare(nan, nan))
	assert.Equal(t, -1, Compare(3, 7))
	assert.Equal(t, 1, Compare(uint8(9), uint8(2)))
}

func TestTracker(t *testing.T) {
	var tr Tracker
	tr.Compare()
	tr.AddComparisons(4)
	tr.Enter(3)
	tr.Enter(1)

	m := tr.Metrics()
	assert.Equal(t, int64(5), m.Comparisons)
	assert.Equal(t, 3, m.MaxDepth)
}

func TestRecorderResetsPerCall(t *testing.T) {
	var r Recorder
	assert.Zero(t, r.Comparisons())
	assert.Zero(t, r.MaxDepth())

	tr := r.Start()
	tr.AddComparisons(10)
	tr.Enter(4)
	r.Publish(tr)
	require.Equal(t, Metrics{Comparisons: 10, MaxDepth: 4}, r.Metrics())

	tr = r.Start()
	assert.Equal(t, Metrics{}, r.Metrics(), "Start must clear the previous call")
	tr.Compare()
	r.Publish(tr)
	assert.Equal(t, int64(1), r.Comparisons())
	assert.Equal(t, 0, r.MaxDepth())
}

func TestInvalidArgumentf(t *testing.T) {
	err := InvalidArgumentf("k=%d out of range [0, %d)", 7, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "invalid argument: k=7 out of range [0, 3)", err.Error())
}

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 0}, {0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3},
		{8, 3}, {9, 4}, {100, 7}, {1000, 10}, {1024, 10}, {1025, 11}, {10000, 14},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilLog2(tt.n), "CeilLog2(%d)", tt.n)
	}
}

func TestDepthBounds(t *testing.T) {
	assert.Equal(t, 12, MergeDepthBound(100))
	assert.Equal(t, 30, PartitionDepthBound(1000))
	assert.Equal(t, 36, SelectDepthBound(100))
	assert.Equal(t, int64(8*50*6+150), ClosestPairComparisonBound(50))
}

func TestNilTracker(t *testing.T) {
	var tr *Tracker
	tr.Compare()
	tr.AddComparisons(3)
	tr.Enter(9)
	assert.Equal(t, Metrics{}, tr.Metrics())
}
