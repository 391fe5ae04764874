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
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-dnc/dnc"
	"github.com/ajroetker/go-dnc/dnc/contrib/closestpair"
	"github.com/ajroetker/go-dnc/dnc/contrib/oracle"
	"github.com/ajroetker/go-dnc/dnc/contrib/selection"
	"github.com/ajroetker/go-dnc/dnc/contrib/sort"
	"github.com/ajroetker/go-dnc/dnc/contrib/workerpool"
)

// distanceTolerance is the allowed gap between the divide-and-conquer and
// brute-force closest distances.
const distanceTolerance = 1e-9

// maxFailureSamples caps the failure messages kept per suite.
const maxFailureSamples = 5

// trialResult is the outcome of one input.
type trialResult struct {
	metrics  dnc.Metrics
	distinct int
	failure  string
}

// Runner executes the configured suites. Every trial builds its own
// algorithm instance and random source, so trials can run in parallel.
type Runner struct {
	cfg  Config
	pool *workerpool.Pool
	log  *zap.Logger
}

// NewRunner returns a Runner for a validated cfg. Close releases its workers.
func NewRunner(cfg Config, log *zap.Logger) *Runner {
	return &Runner{
		cfg:  cfg,
		pool: workerpool.New(cfg.Workers),
		log:  log,
	}
}

// Close stops the worker pool.
func (r *Runner) Close() {
	r.pool.Close()
}

// Run executes every suite at every size and collects the results in
// configuration order. Property failures are recorded in the report, not
// returned as errors.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	results := make([]SuiteResult, len(r.cfg.Suites)*len(r.cfg.Sizes))

	g, ctx := errgroup.WithContext(ctx)
	for si, suite := range r.cfg.Suites {
		for zi, n := range r.cfg.Sizes {
			idx := si*len(r.cfg.Sizes) + zi
			g.Go(func() error {
				res, err := r.runSuite(ctx, suite, n)
				if err != nil {
					return fmt.Errorf("suite %s n=%d: %w", suite, n, err)
				}
				results[idx] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Host: currentHost(), Config: r.cfg, Results: results}, nil
}

func (r *Runner) runSuite(ctx context.Context, suite string, n int) (SuiteResult, error) {
	start := time.Now()
	trials := make([]trialResult, r.cfg.Trials)

	err := r.pool.ForEach(ctx, r.cfg.Trials, func(ctx context.Context, i int) error {
		res, err := r.runTrial(suite, n, i)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		trials[i] = res
		return nil
	})
	if err != nil {
		return SuiteResult{}, err
	}

	res := summarize(suite, n, trials)
	res.Elapsed = time.Since(start)

	fields := []zap.Field{
		zap.String("suite", suite),
		zap.Int("n", n),
		zap.Int("trials", res.Trials),
		zap.Int("max_depth", res.MaxDepth),
		zap.Float64("mean_comparisons", res.MeanComparisons),
		zap.Duration("elapsed", res.Elapsed),
	}
	if res.Failures > 0 {
		r.log.Warn("suite failed property checks", append(fields, zap.Int("failures", res.Failures), zap.Strings("samples", res.FailureSamples))...)
	} else {
		r.log.Debug("suite passed", fields...)
	}
	return res, nil
}

// trialSeed derives an independent seed per suite, size and trial.
func (r *Runner) trialSeed(suite string, n, trial int) uint64 {
	seed := r.cfg.Seed
	for _, c := range suite {
		seed = seed*31 + uint64(c)
	}
	return seed*1_000_003 + uint64(n)*7919 + uint64(trial)
}

func (r *Runner) runTrial(suite string, n, trial int) (trialResult, error) {
	rng := oracle.NewRand(r.trialSeed(suite, n, trial))

	switch suite {
	case suiteMerge, suiteQuick:
		data := oracle.RandomInts(rng, n, r.cfg.ValueLimit)
		// every fourth trial stresses duplicate handling
		if trial%4 == 3 {
			data = oracle.DuplicateHeavy(n)
		}
		if suite == suiteMerge {
			var s sort.MergeSorter[int]
			return checkSort(&s, data, dnc.MergeDepthBound(n)), nil
		}
		var s sort.QuickSorter[int]
		return checkSort(&s, data, dnc.PartitionDepthBound(n)), nil

	case suiteSelect:
		return checkSelect(oracle.RandomInts(rng, n, r.cfg.ValueLimit))

	case suiteClosest:
		return r.checkClosest(oracle.RandomPoints(rng, n, r.cfg.PointScale))
	}
	return trialResult{}, fmt.Errorf("unknown suite %q", suite)
}

type intSorter interface {
	Sort(data []int)
	Metrics() dnc.Metrics
}

func checkSort(s intSorter, data []int, depthBound int) trialResult {
	original := slices.Clone(data)
	s.Sort(data)

	res := trialResult{metrics: s.Metrics(), distinct: oracle.DistinctInts(original)}
	switch {
	case !oracle.IsSorted(data):
		res.failure = "output is not sorted"
	case !oracle.IsPermutation(original, data):
		res.failure = "output is not a permutation of the input"
	case res.metrics.MaxDepth > depthBound:
		res.failure = fmt.Sprintf("depth %d exceeds bound %d", res.metrics.MaxDepth, depthBound)
	}
	return res
}

// checkSelect queries every tenth rank and reports the deepest call and the
// mean comparisons per call.
func checkSelect(data []int) (trialResult, error) {
	n := len(data)
	sorted := oracle.SortedCopy(data)
	step := max(1, n/10)
	bound := dnc.SelectDepthBound(n)

	var (
		s     selection.Selector[int]
		res   = trialResult{distinct: oracle.DistinctInts(data)}
		calls int64
		total int64
	)
	for k := 0; k < n; k += step {
		got, err := s.Select(data, k)
		if err != nil {
			return trialResult{}, err
		}
		calls++
		total += s.Comparisons()
		res.metrics.MaxDepth = max(res.metrics.MaxDepth, s.MaxDepth())

		if res.failure != "" {
			continue
		}
		if got != sorted[k] {
			res.failure = fmt.Sprintf("rank %d: got %d, want %d", k, got, sorted[k])
		} else if s.MaxDepth() > bound {
			res.failure = fmt.Sprintf("rank %d: depth %d exceeds bound %d", k, s.MaxDepth(), bound)
		}
	}
	res.metrics.Comparisons = total / calls
	return res, nil
}

func (r *Runner) checkClosest(points []closestpair.Point) (trialResult, error) {
	var f closestpair.Finder
	got, err := f.FindClosestPair(points)
	if err != nil {
		return trialResult{}, err
	}

	res := trialResult{metrics: f.Metrics(), distinct: len(points)}
	if bound := dnc.CeilLog2(len(points)); res.metrics.MaxDepth > bound {
		res.failure = fmt.Sprintf("depth %d exceeds bound %d", res.metrics.MaxDepth, bound)
		return res, nil
	}
	if bound := dnc.ClosestPairComparisonBound(len(points)); res.metrics.Comparisons > bound {
		res.failure = fmt.Sprintf("%d distance evaluations exceed bound %d", res.metrics.Comparisons, bound)
		return res, nil
	}
	if len(points) > r.cfg.BruteForceLimit {
		return res, nil
	}
	want, ok := closestpair.BruteForce(points)
	if !ok {
		return trialResult{}, fmt.Errorf("brute force found no pair among %d points", len(points))
	}
	if math.Abs(got.Distance-want.Distance) > distanceTolerance {
		res.failure = fmt.Sprintf("distance %g, brute force %g", got.Distance, want.Distance)
	}
	return res, nil
}

func summarize(suite string, n int, trials []trialResult) SuiteResult {
	res := SuiteResult{
		Suite:  suite,
		Size:   n,
		Trials: len(trials),
		MaxDepth: lo.Max(lo.Map(trials, func(t trialResult, _ int) int {
			return t.metrics.MaxDepth
		})),
		MaxComparisons: lo.Max(lo.Map(trials, func(t trialResult, _ int) int64 {
			return t.metrics.Comparisons
		})),
		MinDistinct: lo.Min(lo.Map(trials, func(t trialResult, _ int) int {
			return t.distinct
		})),
		Failures: lo.CountBy(trials, func(t trialResult) bool {
			return t.failure != ""
		}),
	}
	if len(trials) > 0 {
		sum := lo.SumBy(trials, func(t trialResult) int64 { return t.metrics.Comparisons })
		res.MeanComparisons = float64(sum) / float64(len(trials))
	}

	failures := lo.FilterMap(trials, func(t trialResult, i int) (string, bool) {
		return fmt.Sprintf("trial %d: %s", i, t.failure), t.failure != ""
	})
	res.FailureSamples = lo.Slice(failures, 0, maxFailureSamples)

	switch suite {
	case suiteMerge:
		res.DepthBound = dnc.MergeDepthBound(n)
	case suiteQuick:
		res.DepthBound = dnc.PartitionDepthBound(n)
	case suiteSelect:
		res.DepthBound = dnc.SelectDepthBound(n)
	case suiteClosest:
		res.DepthBound = dnc.CeilLog2(n)
		res.ComparisonBound = dnc.ClosestPairComparisonBound(n)
	}
	return res
}
