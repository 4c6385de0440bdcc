// Copyright 2025 The go-quad Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sweeping
// special functions over large argument grids. A Pool is created once and
// reused across many sweeps, so each evaluation batch costs a channel send
// rather than a goroutine spawn.
//
// Every worker has a stable index in [0, NumWorkers), passed to the work
// function, so callers can accumulate results in per-worker slots without
// locking.
//
// Usage:
//
//	pool := workerpool.New(workerpool.DefaultWorkers())
//	defer pool.Close()
//
//	tallies := make([]tally, pool.NumWorkers())
//	err := pool.ParallelForBatched(ctx, len(xs), 64, func(worker, start, end int) {
//	    for _, x := range xs[start:end] {
//	        tallies[worker].check(x)
//	    }
//	})
package workerpool

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// WorkersEnv names the environment variable that overrides the default
// worker count.
const WorkersEnv = "QUAD_WORKERS"

// DefaultWorkers returns the worker count from QUAD_WORKERS when it holds a
// positive integer, and GOMAXPROCS otherwise.
func DefaultWorkers() int {
	val := os.Getenv(WorkersEnv)
	if val == "" {
		return runtime.GOMAXPROCS(0)
	}
	if n, err := strconv.Atoi(val); err == nil && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func(worker int)
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses DefaultWorkers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for id := range numWorkers {
		go p.worker(id)
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker(id int) {
	for item := range p.workC {
		item.fn(id)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all work completes.
//
// fn receives the worker index and (start, end) indices where work should
// process [start, end).
func (p *Pool) ParallelFor(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, 0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, 0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func(worker int) {
				fn(worker, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForBatched executes fn over [0, n) in batches of batchSize indices
// handed out by atomic work stealing, which balances load when evaluation
// cost varies across the range. Workers stop taking batches once ctx is
// done; batches already started run to completion. It returns ctx.Err() if
// the sweep was cut short.
//
// fn receives the worker index and (start, end) indices where work should
// process [start, end).
func (p *Pool) ParallelForBatched(ctx context.Context, n, batchSize int, fn func(worker, start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	run := func(worker int, next func() int) {
		for {
			if ctx.Err() != nil {
				return
			}
			start := next() * batchSize
			if start >= n {
				return
			}
			fn(worker, start, min(start+batchSize, n))
		}
	}

	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() || workers == 1 {
		batch := 0
		run(0, func() int { batch++; return batch - 1 })
		return ctx.Err()
	}

	var nextBatch atomic.Int64
	next := func() int { return int(nextBatch.Add(1)) - 1 }
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func(worker int) {
				run(worker, next)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return ctx.Err()
}
