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

import "modernc.org/mathutil"

// CeilLog2 returns ceil(log2(n)) for n >= 1 and 0 otherwise.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return mathutil.BitLen(n - 1)
}

// MergeDepthBound is the recursion depth a merge sort of n elements must not
// exceed: ceil(log2(n)) + 5.
func MergeDepthBound(n int) int {
	return CeilLog2(n) + 5
}

// PartitionDepthBound is the recursion depth a partition sort of n elements
// must not exceed: 2*ceil(log2(n)) + 10.
func PartitionDepthBound(n int) int {
	return 2*CeilLog2(n) + 10
}

// SelectDepthBound is the recursion depth a median-of-medians selection over
// n elements must not exceed: 4*ceil(log2(n)) + 8.
func SelectDepthBound(n int) int {
	return 4*CeilLog2(n) + 8
}

// ClosestPairComparisonBound caps the distance evaluations of a
// divide-and-conquer closest pair search over n points: every strip point is
// checked against a constant number of neighbours per level, plus at most
// three evaluations per leaf.
func ClosestPairComparisonBound(n int) int64 {
	return int64(8*n*CeilLog2(n) + 3*n)
}
