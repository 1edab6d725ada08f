// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// maskAndShift returns the (mask, shift) pair that extracts the digit at
// the given level (0 = most significant digit) from a key of codec.Bits
// bits under params p.
func maskAndShift[T any, K RadixKey](codec Codec[T, K], p Params, level int) (K, uint) {
	return codec.DefaultMask(p.Radix), shiftForLevel(codec.Bits, p.Offset, p.Radix, level)
}

// maskAndShiftLSB is maskAndShift's LSD/DLSD counterpart: it returns the
// LSB-aligned shift (shiftForLevelLSB) for the digit at the given level,
// so the least significant digit is never dropped (see shiftForLevelLSB).
func maskAndShiftLSB[T any, K RadixKey](codec Codec[T, K], p Params, level int) (K, uint) {
	return codec.DefaultMask(p.Radix), shiftForLevelLSB(p.Radix, p.MaxLevel, level)
}

// getHistogram tallies, for each element of arr, the bucket its digit
// (under mask/shift) falls into. The 4-way manual unroll mirrors the
// source algorithm's get_histogram, which exists because the Go/Rust
// compiler's own auto-vectorizer rarely unrolls a data-dependent-index
// scatter like histogram[bucket]++ on its own.
func getHistogram[T any, K RadixKey](arr []T, codec Codec[T, K], mask K, shift uint, radixRange int) []int {
	histogram := make([]int, radixRange)

	n := len(arr)
	quotient := n / 4
	remainder := n % 4

	for q := 0; q < quotient; q++ {
		i := q * 4
		histogram[codec.Extract(arr[i], mask, shift)]++
		histogram[codec.Extract(arr[i+1], mask, shift)]++
		histogram[codec.Extract(arr[i+2], mask, shift)]++
		histogram[codec.Extract(arr[i+3], mask, shift)]++
	}

	offset := quotient * 4
	for i := 0; i < remainder; i++ {
		histogram[codec.Extract(arr[offset+i], mask, shift)]++
	}

	return histogram
}

// getHistogramMT is the parallel counterpart of getHistogram: arr is
// split into disjoint sub-slices run on pool, each chunk's histogram is
// computed independently, and the results are summed component-wise.
// Aggregation is commutative and associative, so no ordering constraint
// is needed across chunks (spec.md section 4.2/5).
func getHistogramMT[T any, K RadixKey](arr []T, codec Codec[T, K], mask K, shift uint, radixRange int, pool *Pool) []int {
	chunkN := pool.NumWorkers()
	if chunkN < 1 {
		chunkN = 1
	}
	if chunkN > len(arr) {
		chunkN = len(arr)
	}
	if chunkN <= 1 {
		return getHistogram(arr, codec, mask, shift, radixRange)
	}

	partial := make([][]int, chunkN)
	pool.parallelForChunks(len(arr), chunkN, func(worker, start, end int) {
		partial[worker] = getHistogram(arr[start:end], codec, mask, shift, radixRange)
	})

	global := make([]int, radixRange)
	for _, h := range partial {
		for i, v := range h {
			global[i] += v
		}
	}
	return global
}

// getHistogramChunksMT is getHistogramMT's counterpart for callers that
// need each chunk's own histogram (not just the summed total): parallel
// out-of-place distribution needs to know, per chunk, how many elements
// that chunk contributes to each bucket, so it can compute a stable
// per-chunk write offset ahead of time instead of sharing a single mutable
// cursor across goroutines.
func getHistogramChunksMT[T any, K RadixKey](arr []T, codec Codec[T, K], mask K, shift uint, radixRange int, pool *Pool) (global []int, perChunk [][]int, bounds []Run) {
	chunkN := pool.NumWorkers()
	if chunkN < 1 {
		chunkN = 1
	}
	if chunkN > len(arr) {
		chunkN = len(arr)
	}

	perChunk = make([][]int, chunkN)
	bounds = make([]Run, chunkN)
	pool.parallelForChunks(len(arr), chunkN, func(worker, start, end int) {
		perChunk[worker] = getHistogram(arr[start:end], codec, mask, shift, radixRange)
		bounds[worker] = Run{Start: start, End: end}
	})

	global = make([]int, radixRange)
	for _, h := range perChunk {
		if h == nil {
			continue
		}
		for i, v := range h {
			global[i] += v
		}
	}
	return global, perChunk, bounds
}

// getFullHistogramsFast computes one histogram per digit position in a
// single pass over arr, amortizing the memory traffic that would
// otherwise be paid once per level. The source algorithm hand-unrolls a
// switch over max_level in {1..8}; this adaptation instead walks every
// level for each element in an inner loop, which is asymptotically
// identical (still one pass over arr) without duplicating eight
// near-identical unrolled bodies (see DESIGN.md).
//
// Only the LSD/DLSD family calls this, so the shifts are LSB-aligned
// (shiftForLevelLSB): the least significant digit must never be dropped,
// and only the LSB-aligned scheme guarantees that (see shiftForLevelLSB).
func getFullHistogramsFast[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) [][]int {
	histograms := make([][]int, p.MaxLevel)
	for l := range histograms {
		histograms[l] = make([]int, p.RadixRange)
	}
	if p.MaxLevel == 0 {
		return histograms
	}

	mask := codec.DefaultMask(p.Radix)
	shifts := make([]uint, p.MaxLevel)
	for l := 0; l < p.MaxLevel; l++ {
		shifts[l] = shiftForLevelLSB(p.Radix, p.MaxLevel, l)
	}

	for _, v := range arr {
		key := codec.IntoKey(v)
		for l := 0; l < p.MaxLevel; l++ {
			histograms[l][int((key>>shifts[l])&mask)]++
		}
	}

	return histograms
}

// getNextTwoHistograms computes only the histograms of levels p.Level and
// p.Level+1, used by Ska (skaRec) to plan one level of look-ahead without
// paying for a full histogram set.
func getNextTwoHistograms[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) [][]int {
	return getPartialHistogramsFast(arr, codec, p, 2)
}

// getPartialHistogramsFast computes histograms for the `partial` MSD levels
// starting at p.Level (partial in 1..=5, per spec.md section 4.2). Requesting more
// than 5 is an implementation-limit error (spec.md section 7, taxonomy
// item 1).
func getPartialHistogramsFast[T any, K RadixKey](arr []T, codec Codec[T, K], p Params, partial int) [][]int {
	if partial < 1 || partial > 5 {
		panic("radix: partial histogram request must be in 1..=5")
	}

	histograms := make([][]int, partial)
	for l := range histograms {
		histograms[l] = make([]int, p.RadixRange)
	}

	mask := codec.DefaultMask(p.Radix)

	// Histograms cover the window of levels [p.Level, p.Level+partial),
	// each at the same MSB-aligned shift maskAndShift uses for that level,
	// so histograms[0] is exactly the current level's histogram. spec.md
	// section 7 taxonomy item 3: a level whose shift would underflow past
	// the key's least significant bit is clamped to shift zero instead
	// (shiftForLevel); only the deepest level is ever clamped.
	shifts := make([]uint, partial)
	for l := range shifts {
		shifts[l] = shiftForLevel(codec.Bits, p.Offset, p.Radix, p.Level+l)
	}

	for _, v := range arr {
		key := codec.IntoKey(v)
		for l := 0; l < partial; l++ {
			histograms[l][int((key>>shifts[l])&mask)]++
		}
	}

	return histograms
}
