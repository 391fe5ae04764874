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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SuiteResult aggregates the trials of one suite at one size.
type SuiteResult struct {
	Suite  string `json:"suite"`
	Size   int    `json:"size"`
	Trials int    `json:"trials"`

	// Failures counts trials that broke a property.
	Failures       int      `json:"failures"`
	FailureSamples []string `json:"failure_samples,omitempty"`

	MaxDepth   int `json:"max_depth"`
	DepthBound int `json:"depth_bound"`

	MeanComparisons float64 `json:"mean_comparisons"`
	MaxComparisons  int64   `json:"max_comparisons"`
	// ComparisonBound is zero when the suite has no comparison bound.
	ComparisonBound int64 `json:"comparison_bound,omitempty"`

	// MinDistinct is the fewest distinct input values seen in a trial.
	MinDistinct int `json:"min_distinct"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Report is the outcome of a Runner.Run.
type Report struct {
	Host    HostInfo      `json:"host"`
	Config  Config        `json:"config"`
	Results []SuiteResult `json:"results"`
}

// Failed reports whether any trial broke a property.
func (r *Report) Failed() bool {
	return lo.SomeBy(r.Results, func(s SuiteResult) bool { return s.Failures > 0 })
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes r as an aligned table with numbers grouped for tag.
func (r *Report) WriteText(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)

	if _, err := p.Fprintf(w, "host: %s\nseed: %d  trials: %d\n\n", r.Host, r.Config.Seed, r.Config.Trials); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "suite\tn\ttrials\tfailed\tdepth\tbound\tmean cmps\tmax cmps\tdistinct\telapsed\t")
	for _, s := range r.Results {
		p.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t%d\t%d\t%s\t\n",
			s.Suite, s.Size, s.Trials, s.Failures, s.MaxDepth, s.DepthBound,
			s.MeanComparisons, s.MaxComparisons, s.MinDistinct, s.Elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range r.Results {
		for _, msg := range s.FailureSamples {
			if _, err := fmt.Fprintf(w, "FAIL %s n=%d %s\n", s.Suite, s.Size, msg); err != nil {
				return err
			}
		}
	}

	status := "PASS"
	if r.Failed() {
		failed := lo.Filter(r.Results, func(s SuiteResult, _ int) bool { return s.Failures > 0 })
		names := lo.Uniq(lo.Map(failed, func(s SuiteResult, _ int) string { return s.Suite }))
		status = "FAIL (" + strings.Join(names, ", ") + ")"
	}
	_, err := fmt.Fprintf(w, "\n%s\n", status)
	return err
}
