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

package sort

import "github.com/ajroetker/go-dnc/dnc"

// Thresholds for QuickSorter.
const (
	// QuickInsertionCutoff: use insertion sort for ranges this size or smaller.
	QuickInsertionCutoff = 16

	// nintherThreshold: use the Tukey ninther instead of median-of-three for
	// ranges this size or larger.
	nintherThreshold = 50
)

// QuickSorter sorts slices with a three-way partition sort whose recursion
// depth is bounded by log2(n) on every input.
// The zero value is ready to use.
type QuickSorter[T dnc.Ordered] struct {
	dnc.Recorder
}

// Sort sorts data in ascending order in place.
// Nil, empty and single-element slices are left untouched.
func (s *QuickSorter[T]) Sort(data []T) {
	tr := s.Start()
	defer s.Publish(tr)

	if len(data) <= 1 {
		return
	}

	quickSort(data, 0, tr)
}

// quickSort recurses only into the smaller of the two unsorted partitions
// and keeps looping on the larger one, so each recursive call at least
// halves the range.
func quickSort[T dnc.Ordered](data []T, depth int, tr *dnc.Tracker) {
	tr.Enter(depth)

	for len(data) > QuickInsertionCutoff {
		pivot := choosePivot(data, tr)
		lt, gt := Partition3Way(data, pivot, tr)

		less, greater := data[:lt], data[gt:]
		if len(less) < len(greater) {
			quickSort(less, depth+1, tr)
			data = greater
		} else {
			quickSort(greater, depth+1, tr)
			data = less
		}
	}

	InsertionSort(data, tr)
}

func choosePivot[T dnc.Ordered](data []T, tr *dnc.Tracker) T {
	if len(data) >= nintherThreshold {
		return pivotNinther(data, tr)
	}
	return PivotMedianOf3(data, tr)
}
