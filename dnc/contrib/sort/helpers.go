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

// InsertionSort sorts data in place. Every shifting comparison is counted,
// plus the comparison that stops the shift when one is made.
func InsertionSort[T dnc.Ordered](data []T, tr *dnc.Tracker) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && dnc.Less(key, data[j]) {
			tr.Compare()
			data[j+1] = data[j]
			j--
		}
		if j >= 0 {
			tr.Compare()
		}
		data[j+1] = key
	}
}

// Partition3Way performs 3-way partitioning (Dutch National Flag) around a
// pivot in a single pass. Returns (lt, gt) indices where:
//   - data[0:lt] < pivot
//   - data[lt:gt] == pivot
//   - data[gt:n] > pivot
//
// Exactly one comparison is counted per element.
func Partition3Way[T dnc.Ordered](data []T, pivot T, tr *dnc.Tracker) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		tr.Compare()
		switch dnc.Compare(data[i], pivot) {
		case -1:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case 1:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}

	return lt, gt
}

// PivotMedianOf3 selects pivot as median of first, middle, and last elements.
// data must not be empty.
func PivotMedianOf3[T dnc.Ordered](data []T, tr *dnc.Tracker) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}
	return median3(data[0], data[n/2], data[n-1], tr)
}

// pivotNinther picks the median of three medians-of-three taken around the
// quartiles. Needs at least 8 elements.
func pivotNinther[T dnc.Ordered](data []T, tr *dnc.Tracker) T {
	n := len(data)
	i, j, k := n/4, n/2, 3*n/4
	a := median3(data[i-1], data[i], data[i+1], tr)
	b := median3(data[j-1], data[j], data[j+1], tr)
	c := median3(data[k-1], data[k], data[k+1], tr)
	return median3(a, b, c, tr)
}

func median3[T dnc.Ordered](a, b, c T, tr *dnc.Tracker) T {
	tr.Compare()
	if dnc.Less(b, a) {
		a, b = b, a
	}
	tr.Compare()
	if dnc.Less(c, b) {
		b = c
		tr.Compare()
		if dnc.Less(b, a) {
			b = a
		}
	}
	return b
}
