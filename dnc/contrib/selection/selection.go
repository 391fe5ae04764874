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

// Package selection finds order statistics in worst-case linear time using
// the median-of-medians pivot rule.
//
// The pivot is the median of the medians of groups of five, which is
// guaranteed to lie between the 30th and 70th percentile. Each round
// therefore discards a constant fraction of the input, giving O(n) time
// with no randomness.
package selection

import (
	"github.com/ajroetker/go-dnc/dnc"
	"github.com/ajroetker/go-dnc/dnc/contrib/sort"
)

const (
	// BaseCaseSize is the largest range sorted directly instead of being
	// partitioned.
	BaseCaseSize = 10

	// groupSize is the width of the groups whose medians form the pivot
	// candidates.
	groupSize = 5
)

// Selector finds the k-th smallest element of a slice.
// The zero value is ready to use.
type Selector[T dnc.Ordered] struct {
	dnc.Recorder
}

// Select returns the element that would sit at index k if data were sorted
// in ascending order. data is reordered arbitrarily.
//
// An error wrapping dnc.ErrInvalidArgument is returned, before data is
// touched, when data is empty or k is outside [0, len(data)).
func (s *Selector[T]) Select(data []T, k int) (T, error) {
	tr := s.Start()
	defer s.Publish(tr)

	var zero T
	if len(data) == 0 {
		return zero, dnc.InvalidArgumentf("select from empty sequence")
	}
	if k < 0 || k >= len(data) {
		return zero, dnc.InvalidArgumentf("rank %d out of range [0, %d)", k, len(data))
	}

	return selectRank(data, k, 0, tr), nil
}

// Median returns the lower median of data, the element of rank
// (len(data)-1)/2. It has the same error semantics as Select.
func (s *Selector[T]) Median(data []T) (T, error) {
	return s.Select(data, (len(data)-1)/2)
}

// selectRank returns the element of rank k in data. 0 <= k < len(data).
func selectRank[T dnc.Ordered](data []T, k, depth int, tr *dnc.Tracker) T {
	tr.Enter(depth)

	if len(data) <= BaseCaseSize {
		sort.InsertionSort(data, tr)
		return data[k]
	}

	pivot := medianOfMedians(data, depth, tr)
	lt, gt := sort.Partition3Way(data, pivot, tr)

	switch {
	case k < lt:
		return selectRank(data[:lt], k, depth+1, tr)
	case k >= gt:
		return selectRank(data[gt:], k-gt, depth+1, tr)
	default:
		return pivot
	}
}

// medianOfMedians sorts each group of five, gathers the group medians at
// the front of data and selects their median.
func medianOfMedians[T dnc.Ordered](data []T, depth int, tr *dnc.Tracker) T {
	m := 0
	for lo := 0; lo < len(data); lo += groupSize {
		hi := min(lo+groupSize, len(data))
		group := data[lo:hi]
		sort.InsertionSort(group, tr)
		mid := lo + (len(group)-1)/2
		data[m], data[mid] = data[mid], data[m]
		m++
	}
	return selectRank(data[:m], (m-1)/2, depth+1, tr)
}
