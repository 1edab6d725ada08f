// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// msdParallelThreshold is the element count above which msdRecCopy
// distributes a level in parallel instead of serially, per spec.md
// section 4.2/5: below this, per-goroutine dispatch overhead outweighs
// the saved work.
const msdParallelThreshold = 200_000

// copyByHistogramMT is the parallel counterpart of copyByHistogram: arr is
// split into pool-sized chunks, each chunk's own histogram is computed
// concurrently (getHistogramChunksMT), and each chunk is then given a
// stable, non-overlapping block of write offsets per bucket — the global
// prefix sum offset for that bucket, plus the counts already claimed by
// earlier chunks for the same bucket — so every chunk writes into
// destination independently with no shared mutable cursor.
func copyByHistogramMT[T any, K RadixKey](source, destination []T, codec Codec[T, K], mask K, shift uint, radixRange int, pool *Pool) (histogram, pSums []int) {
	global, perChunk, bounds := getHistogramChunksMT(source, codec, mask, shift, radixRange, pool)
	pSums, _, _ = prefixSums(global)

	chunkHeads := make([][]int, len(perChunk))
	running := append([]int(nil), pSums[:radixRange]...)
	for c, h := range perChunk {
		chunkHeads[c] = append([]int(nil), running...)
		if h == nil {
			continue
		}
		for b, cnt := range h {
			running[b] += cnt
		}
	}

	pool.parallelOverIndices(len(perChunk), func(c int) {
		r := bounds[c]
		if r.Start >= r.End {
			return
		}
		heads := chunkHeads[c]
		for _, v := range source[r.Start:r.End] {
			b := codec.Extract(v, mask, shift)
			destination[heads[b]] = v
			heads[b]++
		}
	})

	return global, pSums
}
