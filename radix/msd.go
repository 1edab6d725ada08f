// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "github.com/justanotherdot/voracious-go/internal/assert"

// copyByHistogram distributes source into destination using heads as
// per-bucket insertion cursors, per spec.md section 4.5.
func copyByHistogram[T any, K RadixKey](source, destination []T, heads []int, mask K, shift uint, codec Codec[T, K]) {
	for _, v := range source {
		b := codec.Extract(v, mask, shift)
		destination[heads[b]] = v
		heads[b]++
	}
}

// msdRecCopy is the out-of-place counterpart of americanFlagRec: each
// level distributes liveData into scratch by histogram and copies the
// partitioned order back into liveData before recursing into buckets.
//
// The source algorithm tracks a single even/odd flip count across levels
// and only copies back when it is odd, avoiding a redundant copy on the
// last level. This version always copies back at every level instead: it
// costs one extra O(bucket) copy in the common case but keeps the
// recursion's pre/post-condition ("liveData holds the sorted result on
// return") simple and uniform across every call, independent of how deep
// a given branch recurses before hitting the insertion-sort base case
// (see DESIGN.md).
func msdRecCopy[T any, K RadixKey](liveData, scratch []T, codec Codec[T, K], p Params) {
	if len(liveData) <= insertionSortCutoff {
		insertionSort(liveData, codec)
		return
	}

	mask, shift := maskAndShift(codec, p, p.Level)

	var histogram, pSums []int
	if len(liveData) >= msdParallelThreshold {
		histogram, pSums = copyByHistogramMT(liveData, scratch, codec, mask, shift, p.RadixRange, DefaultPool())
	} else {
		histogram = getHistogram(liveData, codec, mask, shift, p.RadixRange)
		var heads []int
		pSums, heads, _ = prefixSums(histogram)
		copyByHistogram(liveData, scratch, heads, mask, shift, codec)
	}
	copy(liveData, scratch)
	assert.Invariant(pSums[len(pSums)-1] == len(liveData),
		"msdRecCopy: histogram buckets must account for every element")

	if p.Level >= p.MaxLevel-1 {
		return
	}

	for i := 0; i < p.RadixRange; i++ {
		start, end := pSums[i], pSums[i+1]
		if end-start > 1 {
			msdRecCopy(liveData[start:end], scratch[start:end], codec, p.NewLevel(p.Level+1))
		}
	}
}

// msdSort is the out-of-place MSD variant from spec.md section 4.5.
func msdSort[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) {
	if len(arr) <= insertionSortCutoff {
		insertionSort(arr, codec)
		return
	}

	offset, _ := ComputeOffset(arr, codec, radix)
	maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)
	if maxLevel == 0 {
		return
	}

	scratch := make([]T, len(arr))
	msdRecCopy(arr, scratch, codec, NewParams(radix, offset, maxLevel))
}

// SortMSD sorts arr using the out-of-place MSD algorithm (spec.md section
// 4.5 / section 6, sort_msd).
func SortMSD[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= 1 {
		return nil
	}
	msdSort(arr, codec, radix)
	return nil
}
