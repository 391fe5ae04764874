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

// Metrics are the counters of one top-level algorithm call.
type Metrics struct {
	// Comparisons is the number of element or distance comparisons performed.
	Comparisons int64

	// MaxDepth is the deepest recursion level reached. The root call is 0.
	MaxDepth int
}

// Tracker accumulates Metrics during a single call. A new Tracker is created
// at the top of every call and passed down the recursion by pointer, so
// nothing leaks between calls.
type Tracker struct {
	m Metrics
}

// A nil *Tracker is valid and discards everything, which lets the exported
// building blocks in dnc/contrib run uninstrumented.

// Compare counts one comparison.
func (t *Tracker) Compare() {
	if t == nil {
		return
	}
	t.m.Comparisons++
}

// AddComparisons counts n comparisons.
func (t *Tracker) AddComparisons(n int) {
	if t == nil {
		return
	}
	t.m.Comparisons += int64(n)
}

// Enter records that the recursion reached depth.
func (t *Tracker) Enter(depth int) {
	if t == nil {
		return
	}
	if depth > t.m.MaxDepth {
		t.m.MaxDepth = depth
	}
}

// Metrics returns the counters gathered so far.
func (t *Tracker) Metrics() Metrics {
	if t == nil {
		return Metrics{}
	}
	return t.m
}

// Recorder holds the Metrics of the most recent call of an algorithm
// instance. Embed it to get the accessors.
//
// The zero value reports zero for every counter.
type Recorder struct {
	last Metrics
}

// Start resets the published metrics and returns a fresh tracker for a new
// top-level call.
func (r *Recorder) Start() *Tracker {
	r.last = Metrics{}
	return &Tracker{}
}

// Publish stores the counters of a finished call.
func (r *Recorder) Publish(t *Tracker) {
	r.last = t.Metrics()
}

// Comparisons returns the comparison count of the most recent call.
func (r *Recorder) Comparisons() int64 {
	return r.last.Comparisons
}

// MaxDepth returns the deepest recursion level of the most recent call.
func (r *Recorder) MaxDepth() int {
	return r.last.MaxDepth
}

// Metrics returns both counters of the most recent call.
func (r *Recorder) Metrics() Metrics {
	return r.last
}
