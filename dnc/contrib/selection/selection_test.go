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

package selection

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/ajroetker/go-dnc/dnc"
	"github.com/ajroetker/go-dnc/dnc/contrib/oracle"
)

func TestSelectBasic(t *testing.T) {
	var s Selector[int]
	tests := []struct {
		k, want int
	}{
		{0, 1}, // minimum
		{2, 3}, // 3rd smallest
		{5, 9}, // maximum
	}
	for _, tt := range tests {
		data := []int{5, 2, 8, 1, 9, 3}
		got, err := s.Select(data, tt.k)
		if err != nil {
			t.Fatalf("Select(k=%d) error: %v", tt.k, err)
		}
		if got != tt.want {
			t.Errorf("Select(k=%d) = %d, want %d", tt.k, got, tt.want)
		}
	}
}

func TestSelectEdgeCases(t *testing.T) {
	var s Selector[int]
	tests := []struct {
		name string
		data []int
		k    int
		want int
	}{
		{"single", []int{42}, 0, 42},
		{"twoLow", []int{2, 1}, 0, 1},
		{"twoHigh", []int{2, 1}, 1, 2},
		{"dupMin", []int{5, 5, 1, 5, 2, 5}, 0, 1},
		{"dupSecond", []int{5, 5, 1, 5, 2, 5}, 1, 2},
		{"dupRun", []int{5, 5, 1, 5, 2, 5}, 2, 5},
		{"dupLast", []int{5, 5, 1, 5, 2, 5}, 5, 5},
	}
	for _, tt := range tests {
		got, err := s.Select(slices.Clone(tt.data), tt.k)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: Select(%v, %d) = %d, want %d", tt.name, tt.data, tt.k, got, tt.want)
		}
	}
}

func TestSelectRandomArrays(t *testing.T) {
	r := oracle.NewRand(42)
	var s Selector[int]
	for trial := range 100 {
		array := oracle.RandomInts(r, 100, 1000)
		sorted := oracle.SortedCopy(array)

		for k := 0; k < len(array); k += 10 {
			got, err := s.Select(array, k)
			if err != nil {
				t.Fatalf("trial %d k=%d: %v", trial, k, err)
			}
			if got != sorted[k] {
				t.Fatalf("Failed for k=%d in trial %d: got %d, want %d", k, trial, got, sorted[k])
			}
			if bound := dnc.SelectDepthBound(len(array)); s.MaxDepth() > bound {
				t.Errorf("trial %d k=%d: depth %d exceeded %d", trial, k, s.MaxDepth(), bound)
			}
		}
	}
}

func TestSelectEveryRank(t *testing.T) {
	r := oracle.NewRand(3)
	var s Selector[int]
	for _, n := range []int{1, 5, 10, 11, 24, 25, 26, 137} {
		data := oracle.RandomInts(r, n, 50)
		sorted := oracle.SortedCopy(data)
		for k := range n {
			got, err := s.Select(slices.Clone(data), k)
			if err != nil {
				t.Fatalf("n=%d k=%d: %v", n, k, err)
			}
			if got != sorted[k] {
				t.Errorf("n=%d k=%d: got %d, want %d", n, k, got, sorted[k])
			}
		}
	}
}

func TestSelectLarge(t *testing.T) {
	r := oracle.NewRand(11)
	var s Selector[int]
	for _, n := range []int{1000, 10000} {
		data := oracle.RandomInts(r, n, 1_000_000)
		sorted := oracle.SortedCopy(data)
		for _, k := range []int{0, n / 3, n / 2, n - 1} {
			got, err := s.Select(slices.Clone(data), k)
			if err != nil {
				t.Fatal(err)
			}
			if got != sorted[k] {
				t.Errorf("n=%d k=%d: got %d, want %d", n, k, got, sorted[k])
			}
			if bound := dnc.SelectDepthBound(n); s.MaxDepth() > bound {
				t.Errorf("n=%d k=%d: depth %d exceeded %d", n, k, s.MaxDepth(), bound)
			}
			// linear time: a generous constant times n
			if s.Comparisons() > int64(40*n) {
				t.Errorf("n=%d k=%d: %d comparisons is not linear", n, k, s.Comparisons())
			}
		}
	}
}

func TestSelectDuplicateHeavy(t *testing.T) {
	var s Selector[int]
	data := oracle.DuplicateHeavy(1000)
	for k, want := range map[int]int{0: 1, 1: 5, 500: 5, 998: 5, 999: 10} {
		got, err := s.Select(slices.Clone(data), k)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Select(duplicates, %d) = %d, want %d", k, got, want)
		}
	}
}

func TestSelectSortedAndReverse(t *testing.T) {
	const n = 2000
	asc := make([]int, n)
	desc := make([]int, n)
	for i := range n {
		asc[i] = i
		desc[i] = n - 1 - i
	}
	var s Selector[int]
	for _, k := range []int{0, 1, 999, 1000, n - 1} {
		if got, _ := s.Select(slices.Clone(asc), k); got != k {
			t.Errorf("ascending k=%d: got %d", k, got)
		}
		if got, _ := s.Select(slices.Clone(desc), k); got != k {
			t.Errorf("descending k=%d: got %d", k, got)
		}
	}
}

func TestSelectInvalidArgument(t *testing.T) {
	var s Selector[int]
	tests := []struct {
		name string
		data []int
		k    int
	}{
		{"empty", []int{}, 0},
		{"nil", nil, 0},
		{"negative", []int{1, 2, 3}, -1},
		{"tooLarge", []int{1, 2, 3}, 3},
	}
	for _, tt := range tests {
		before := slices.Clone(tt.data)
		_, err := s.Select(tt.data, tt.k)
		if !errors.Is(err, dnc.ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", tt.name, err)
		}
		if !slices.Equal(before, tt.data) {
			t.Errorf("%s: input modified on error: %v", tt.name, tt.data)
		}
		if s.Comparisons() != 0 || s.MaxDepth() != 0 {
			t.Errorf("%s: metrics not reset on error", tt.name)
		}
	}
}

func TestSelectFloatsWithNaN(t *testing.T) {
	var s Selector[float64]
	data := []float64{2, math.NaN(), 1, 3}
	got, err := s.Select(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Select(k=0) = %v, want NaN", got)
	}
	got, _ = s.Select([]float64{2, math.NaN(), 1, 3}, 3)
	if got != 3 {
		t.Errorf("Select(k=3) = %v, want 3", got)
	}
}

func TestMedian(t *testing.T) {
	var s Selector[int]
	if got, _ := s.Median([]int{5, 2, 8, 1, 9, 3}); got != 3 {
		t.Errorf("Median(even) = %d, want 3", got)
	}
	if got, _ := s.Median([]int{7, 1, 4}); got != 4 {
		t.Errorf("Median(odd) = %d, want 4", got)
	}
	if _, err := s.Median(nil); !errors.Is(err, dnc.ErrInvalidArgument) {
		t.Errorf("Median(nil) err = %v, want ErrInvalidArgument", err)
	}
}

func TestSelectMetricsReset(t *testing.T) {
	var s Selector[int]
	if _, err := s.Select(oracle.RandomInts(oracle.NewRand(5), 5000, 100), 2500); err != nil {
		t.Fatal(err)
	}
	if s.MaxDepth() == 0 || s.Comparisons() == 0 {
		t.Fatalf("expected recursion on n=5000, got %+v", s.Metrics())
	}
	if _, err := s.Select([]int{4}, 0); err != nil {
		t.Fatal(err)
	}
	if s.Metrics() != (dnc.Metrics{}) {
		t.Errorf("metrics after single-element call = %+v, want zero", s.Metrics())
	}
}

func BenchmarkSelect_100000(b *testing.B) {
	ref := oracle.RandomInts(oracle.NewRand(1), 100000, 1_000_000)
	data := make([]int, len(ref))
	var s Selector[int]
	b.ResetTimer()
	for b.Loop() {
		copy(data, ref)
		_, _ = s.Select(data, len(data)/2)
	}
}
