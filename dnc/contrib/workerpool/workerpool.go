// Copyright 2025 The go-dnc Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// many independent trials of an algorithm in parallel. A Pool is created
// once and reused across suites, so each batch of trials only pays for
// queueing work, not for spawning goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ForEach(ctx, trials, func(ctx context.Context, i int) error {
//	    return runTrial(ctx, i)
//	})
//
// The pool only schedules. Callers must give every task its own algorithm
// instance, since instances are not safe for concurrent calls.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many ForEach
// calls. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a ForEach call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Work already queued still completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn for every index in [0, n) and blocks until all calls
// return. Workers claim indices one at a time, which balances trials of
// uneven cost.
//
// The first error returned by fn is returned from ForEach and cancels the
// context passed to the remaining calls; indices not yet claimed are
// skipped. Cancelling ctx has the same effect.
//
// After Close, ForEach runs the calls sequentially on the caller's
// goroutine.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel(err)
		})
	}

	var next atomic.Int64
	run := func() {
		for {
			if ctx.Err() != nil {
				return
			}
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if err := fn(ctx, i); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		run()
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			p.workC <- workItem{fn: run, barrier: &wg}
		}
		wg.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	return context.Cause(ctx)
}
