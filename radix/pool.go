// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"runtime"
	"sync"

	"github.com/justanotherdot/voracious-go/internal/workerpool"
)

// Pool wraps the internal persistent workerpool.Pool for radix-specific
// fan-out: an even-chunk histogram pass (parallelForChunks, used by
// getHistogramMT and getHistogramChunksMT) and uneven-cost distribution
// work (parallelOverIndices, used by copyByHistogramMT, and
// ParallelForAtomicBatched, used by countingSortMT), per spec.md section 5.
// The in-place swap passes (serialSwap) do not use the pool.
type Pool struct {
	inner *workerpool.Pool
}

// NewPool creates a Pool with the given number of workers. numWorkers<=0
// sizes it to runtime.GOMAXPROCS(0), matching workerpool.New.
func NewPool(numWorkers int) *Pool {
	return &Pool{inner: workerpool.New(numWorkers)}
}

// Close releases the pool's goroutines.
func (p *Pool) Close() {
	p.inner.Close()
}

// NumWorkers reports how many persistent workers the pool runs.
func (p *Pool) NumWorkers() int {
	return p.inner.NumWorkers()
}

// parallelForChunks splits [0, n) into exactly chunkN contiguous chunks and
// runs fn(worker, start, end) for each non-empty chunk concurrently, giving
// the caller a stable worker index to index into a pre-sized per-worker
// result slice (getHistogramMT's partial histograms).
func (p *Pool) parallelForChunks(n, chunkN int, fn func(worker, start, end int)) {
	if chunkN < 1 {
		chunkN = 1
	}
	chunkSize := (n + chunkN - 1) / chunkN
	p.inner.ParallelForAtomic(chunkN, func(worker int) {
		start := worker * chunkSize
		if start >= n {
			return
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		fn(worker, start, end)
	})
}

// ParallelForAtomicBatched exposes the underlying pool's work-stealing
// batched variant directly, for uneven-cost batches such as
// countingSortMT's distribution pass (spec.md section 5).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	p.inner.ParallelForAtomicBatched(n, batchSize, fn)
}

// parallelOverIndices runs fn(i) for every i in [0, n) via work-stealing,
// used where each index represents a unit of uneven-cost work (a chunk's
// worth of elements to distribute) rather than a contiguous sub-range.
func (p *Pool) parallelOverIndices(n int, fn func(i int)) {
	p.inner.ParallelForAtomic(n, fn)
}

var (
	defaultPoolOnce sync.Once
	defaultPool     *Pool
)

// DefaultPool lazily creates and returns the process-wide worker pool
// sized to runtime.GOMAXPROCS(0), matching spec.md section 9's note that
// the global worker pool is a process-wide resource initialized lazily on
// first use rather than eagerly at package init.
func DefaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(runtime.GOMAXPROCS(0))
	})
	return defaultPool
}
