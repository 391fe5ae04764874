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

// Package oracle provides input generators and reference results for
// checking the algorithms in dnc/contrib. Nothing here is instrumented and
// nothing here is meant to be fast.
package oracle

import (
	"math/rand/v2"
	"slices"
	"sort"

	"modernc.org/sortutil"

	"github.com/ajroetker/go-dnc/dnc"
	"github.com/ajroetker/go-dnc/dnc/contrib/closestpair"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInts returns n values drawn uniformly from [0, limit).
func RandomInts(r *rand.Rand, n, limit int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.IntN(limit)
	}
	return data
}

// DuplicateHeavy returns n copies of 5 with the first element replaced by 1
// and the last by 10. n must be at least 2.
func DuplicateHeavy(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = 5
	}
	data[0] = 1
	data[n-1] = 10
	return data
}

// RandomPoints returns n points with both coordinates uniform in [0, scale).
func RandomPoints(r *rand.Rand, n int, scale float64) []closestpair.Point {
	points := make([]closestpair.Point, n)
	for i := range points {
		points[i] = closestpair.Point{X: r.Float64() * scale, Y: r.Float64() * scale}
	}
	return points
}

// SortedCopy returns an ascending copy of data, leaving data untouched.
func SortedCopy[T dnc.Ordered](data []T) []T {
	c := slices.Clone(data)
	slices.Sort(c)
	return c
}

// IsSorted reports whether data is non-decreasing.
func IsSorted[T dnc.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if dnc.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation[T dnc.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := SortedCopy(a), SortedCopy(b)
	for i := range sa {
		if dnc.Compare(sa[i], sb[i]) != 0 {
			return false
		}
	}
	return true
}

// DistinctInts returns the number of distinct values in data.
func DistinctInts(data []int) int {
	if len(data) == 0 {
		return 0
	}
	c := make(sortutil.Int64Slice, len(data))
	for i, v := range data {
		c[i] = int64(v)
	}
	sort.Sort(c)
	return sortutil.Dedupe(c)
}
