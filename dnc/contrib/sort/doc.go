// Package sort provides instrumented in-place sorts over dnc.Ordered slices.
//
// # Algorithms
//
// MergeSorter is a top-down merge sort:
//   - Insertion sort for ranges of MergeInsertionCutoff elements or fewer
//   - One scratch buffer per call, shared by every merge level
//   - Bitonic merge: the right half is copied reversed so the scan needs no
//     exhaustion checks
//
// QuickSorter is a partition sort with bounded stack depth:
//   - Median-of-three pivot for small ranges, Tukey ninther for large ones
//   - Three-way (Dutch flag) partitioning so runs of equal keys cost one pass
//   - Recursion into the smaller side only; the larger side is looped over
//   - Insertion sort for ranges of QuickInsertionCutoff elements or fewer
//
// Both record comparisons and maximum recursion depth through an embedded
// dnc.Recorder:
//
//	import "github.com/ajroetker/go-dnc/dnc/contrib/sort"
//
//	var s sort.QuickSorter[int]
//	s.Sort(data)
//	log.Printf("%d comparisons, depth %d", s.Comparisons(), s.MaxDepth())
//
// Neither sort is stable. The order of equal elements in the output is
// unspecified.
//
// The building blocks InsertionSort, Partition3Way and PivotMedianOf3 are
// exported for other divide-and-conquer routines; they accept a nil tracker.
package sort
