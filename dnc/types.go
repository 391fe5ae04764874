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

// Package dnc holds the pieces shared by the instrumented divide-and-conquer
// algorithms in dnc/contrib: element constraints, a total order over them,
// per-call metrics tracking and argument errors.
//
// Every algorithm instance embeds a Recorder. A call creates a fresh Tracker,
// threads it through the recursion and publishes it when the call returns:
//
//	var s sort.MergeSorter[int]
//	s.Sort(data)
//	fmt.Println(s.Comparisons(), s.MaxDepth())
//
// Instances are not safe for concurrent calls. Use one instance per goroutine.
package dnc

import "cmp"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for every element type the algorithms accept.
type Ordered interface {
	Integers | Floats | ~string
}

// Less reports whether a sorts before b.
// NaN sorts before every other value and equal to itself, so float slices
// containing NaN still have a total order.
func Less[T Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Compare returns -1, 0 or +1 using the same order as Less.
func Compare[T Ordered](a, b T) int {
	return cmp.Compare(a, b)
}
