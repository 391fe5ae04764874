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

// Package closestpair finds the two closest points of a planar point set in
// O(n log n) time by divide and conquer.
//
// The points are sorted by x once. Each level splits at the median x, solves
// both halves, and then only has to look at the points within the current
// best distance d of the dividing line. Walking that strip in y order, each
// point needs to be checked against at most seven successors, because more
// points than that cannot fit in a d x 2d box without two of them being
// closer than d.
package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/ajroetker/go-dnc/dnc"
)

// bruteForceThreshold: solve ranges this size or smaller pairwise.
const bruteForceThreshold = 3

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Pair is two points and the distance between them.
type Pair struct {
	A, B     Point
	Distance float64
}

// NewPair returns the pair (a, b) with its distance filled in.
func NewPair(a, b Point) Pair {
	return Pair{A: a, B: b, Distance: a.Distance(b)}
}

func (p Pair) String() string {
	return fmt.Sprintf("%v-%v d=%g", p.A, p.B, p.Distance)
}

// Finder searches point sets for their closest pair.
// The zero value is ready to use.
type Finder struct {
	dnc.Recorder
}

// FindClosestPair returns a pair of points at the minimum Euclidean distance
// among points. When several pairs tie, any of them may be returned.
// points itself is not modified.
//
// An error wrapping dnc.ErrInvalidArgument is returned for fewer than two
// points.
func (f *Finder) FindClosestPair(points []Point) (Pair, error) {
	tr := f.Start()
	defer f.Publish(tr)

	if len(points) < 2 {
		return Pair{}, dnc.InvalidArgumentf("closest pair needs at least 2 points, got %d", len(points))
	}

	pts := slices.Clone(points)
	slices.SortFunc(pts, byX)
	aux := make([]Point, len(pts))

	return closest(pts, aux, 0, tr), nil
}

// BruteForce compares every pair of points. ok is false when there are fewer
// than two points and therefore no pair.
func BruteForce(points []Point) (best Pair, ok bool) {
	return bruteForce(points, nil)
}

func bruteForce(points []Point, tr *dnc.Tracker) (best Pair, ok bool) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			tr.Compare()
			d := points[i].Distance(points[j])
			if !ok || d < best.Distance {
				best = Pair{A: points[i], B: points[j], Distance: d}
				ok = true
			}
		}
	}
	return best, ok
}

// closest returns the closest pair of pts, which must be sorted by x and hold
// at least two points. On return pts is sorted by y. aux is scratch space of
// the same length.
func closest(pts, aux []Point, depth int, tr *dnc.Tracker) Pair {
	tr.Enter(depth)

	if len(pts) <= bruteForceThreshold {
		best, _ := bruteForce(pts, tr)
		slices.SortFunc(pts, byY)
		return best
	}

	mid := len(pts) / 2
	midX := pts[mid].X

	best := closest(pts[:mid], aux[:mid], depth+1, tr)
	if right := closest(pts[mid:], aux[mid:], depth+1, tr); right.Distance < best.Distance {
		best = right
	}

	mergeByY(pts, aux, mid)

	strip := aux[:0]
	for _, p := range pts {
		if math.Abs(p.X-midX) < best.Distance {
			strip = append(strip, p)
		}
	}

	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best.Distance; j++ {
			tr.Compare()
			if d := strip[i].Distance(strip[j]); d < best.Distance {
				best = Pair{A: strip[i], B: strip[j], Distance: d}
			}
		}
	}

	return best
}

// mergeByY merges the y-sorted runs pts[:mid] and pts[mid:] in place,
// using aux as the copy source.
func mergeByY(pts, aux []Point, mid int) {
	copy(aux, pts)
	i, j := 0, mid
	for k := range pts {
		switch {
		case i >= mid:
			pts[k] = aux[j]
			j++
		case j >= len(pts):
			pts[k] = aux[i]
			i++
		case aux[j].Y < aux[i].Y:
			pts[k] = aux[j]
			j++
		default:
			pts[k] = aux[i]
			i++
		}
	}
}

func byX(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

func byY(a, b Point) int {
	return cmp.Compare(a.Y, b.Y)
}
