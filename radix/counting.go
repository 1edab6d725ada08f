// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "sync/atomic"

// countingParallelThreshold is the element count above which countingSort
// parallelizes both its histogram and distribution passes (spec.md
// section 5): below it, a single goroutine finishes before the fan-out
// cost would be amortized.
const countingParallelThreshold = 1_000_000

// countingSort implements spec.md section 4.9: a single histogram pass
// over the full `bits`-wide key followed by a single distribution pass.
// It is used directly for narrow keys (B <= 16) and by the dispatcher as
// a wide-radix fallback when max_level is small (spec.md section 4.14).
func countingSort[T any, K RadixKey](arr []T, codec Codec[T, K], bits int) {
	if len(arr) <= 1 {
		return
	}

	mask := K((uint64(1) << uint(bits)) - 1)
	tableSize := 1 << uint(bits)

	if len(arr) >= countingParallelThreshold {
		countingSortMT(arr, codec, mask, tableSize, DefaultPool())
		return
	}

	histogram := make([]int, tableSize)
	for _, v := range arr {
		histogram[int(codec.IntoKey(v)&mask)]++
	}

	_, heads, _ := prefixSums(histogram)

	out := make([]T, len(arr))
	for _, v := range arr {
		b := int(codec.IntoKey(v) & mask)
		out[heads[b]] = v
		heads[b]++
	}
	copy(arr, out)
}

// countingSortMT is countingSort's parallel counterpart for very wide
// inputs: the histogram pass runs on the pool via getHistogramMT, and the
// distribution pass hands out work in batches via ParallelForAtomicBatched
// (work-stealing, since batches near a dense bucket cost more than
// batches near a sparse one) with each bucket's write cursor claimed by an
// atomic fetch-add rather than a shared, unsynchronized int — the one
// place in the package two goroutines can target overlapping output
// indices, so the increment itself must be the synchronization point.
func countingSortMT[T any, K RadixKey](arr []T, codec Codec[T, K], mask K, tableSize int, pool *Pool) {
	histogram := getHistogramMT(arr, codec, mask, 0, tableSize, pool)

	_, heads, _ := prefixSums(histogram)
	atomicHeads := make([]atomic.Int64, tableSize)
	for b, h := range heads {
		atomicHeads[b].Store(int64(h))
	}

	out := make([]T, len(arr))
	pool.ParallelForAtomicBatched(len(arr), 4096, func(start, end int) {
		for _, v := range arr[start:end] {
			b := int(codec.IntoKey(v) & mask)
			idx := atomicHeads[b].Add(1) - 1
			out[idx] = v
		}
	})
	copy(arr, out)
}

// SortCounting sorts arr using a direct counting sort over the codec's
// key, per spec.md section 6 (sort_counting). codec.Bits must be small enough
// that 1<<codec.Bits buckets is a reasonable allocation; callers typically use
// this only when codec.Bits <= 16.
func SortCounting[T any, K RadixKey](arr []T, codec Codec[T, K]) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if len(arr) <= 1 {
		return nil
	}
	countingSort(arr, codec, codec.Bits)
	return nil
}

// SortBoolean sorts a slice of bool-like values in place using counting
// sort over a 1-bit key, per spec.md section 6 (sort_boolean).
func SortBoolean[T ~bool](arr []T) error {
	return SortCounting(arr, BoolCodec[T]())
}
