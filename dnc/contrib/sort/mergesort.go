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

// MergeInsertionCutoff is the largest range MergeSorter hands to insertion
// sort instead of splitting further.
const MergeInsertionCutoff = 10

// MergeSorter sorts slices with a top-down merge sort.
// The zero value is ready to use.
type MergeSorter[T dnc.Ordered] struct {
	dnc.Recorder
}

// Sort sorts data in ascending order in place.
// Nil, empty and single-element slices are left untouched.
func (s *MergeSorter[T]) Sort(data []T) {
	tr := s.Start()
	defer s.Publish(tr)

	if len(data) <= 1 {
		return
	}

	buf := make([]T, len(data))
	mergeSort(data, buf, 0, len(data)-1, 0, tr)
}

// mergeSort sorts data[lo:hi+1]. buf spans all of data and is shared by
// every level.
func mergeSort[T dnc.Ordered](data, buf []T, lo, hi, depth int, tr *dnc.Tracker) {
	tr.Enter(depth)

	if hi-lo+1 <= MergeInsertionCutoff {
		InsertionSort(data[lo:hi+1], tr)
		return
	}

	mid := lo + (hi-lo)/2
	mergeSort(data, buf, lo, mid, depth+1, tr)
	mergeSort(data, buf, mid+1, hi, depth+1, tr)
	merge(data, buf, lo, mid, hi, tr)
}

// merge combines the sorted runs data[lo:mid+1] and data[mid+1:hi+1].
//
// The right run is copied into buf in reverse, so buf[lo:hi+1] rises then
// falls. Taking the smaller of the two ends always yields the next element,
// and neither index can run past the other.
func merge[T dnc.Ordered](data, buf []T, lo, mid, hi int, tr *dnc.Tracker) {
	copy(buf[lo:mid+1], data[lo:mid+1])
	for i := mid + 1; i <= hi; i++ {
		buf[hi+mid+1-i] = data[i]
	}

	i, j := lo, hi
	for k := lo; k <= hi; k++ {
		tr.Compare()
		if !dnc.Less(buf[j], buf[i]) {
			data[k] = buf[i]
			i++
		} else {
			data[k] = buf[j]
			j--
		}
	}
}
