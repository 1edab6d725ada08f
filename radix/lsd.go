// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "sort"

const lsdComparisonCutoff = 128

// lsdComparisonFallback sorts small slices with the standard library's
// comparison sort, grounded directly on the source algorithm's own
// `arr.sort_unstable_by(...)` fallback in lsd_sort.rs.
func lsdComparisonFallback[T any, K RadixKey](arr []T, codec Codec[T, K]) {
	sort.Slice(arr, func(i, j int) bool {
		return codec.IntoKey(arr[i]) < codec.IntoKey(arr[j])
	})
}

// lsdRadixsortBody implements spec.md section 4.6: a full histogram pass
// up front, then one distribution pass per level from least to most
// significant, skipping any level where every element shares a digit.
// bufs[cur] always holds the live data; distributing flips cur to the
// other buffer. This is a direct simplification of lsd_sort.rs's t1/t2
// juggling, which exists in the source only to satisfy Rust's ownership
// rules around swapping two mutable slice bindings.
func lsdRadixsortBody[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) {
	if len(arr) <= lsdComparisonCutoff {
		lsdComparisonFallback(arr, codec)
		return
	}

	scratch := make([]T, len(arr))
	histograms := getFullHistogramsFast(arr, codec, p)

	bufs := [2][]T{arr, scratch}
	cur := 0

	for level := p.MaxLevel - 1; level >= p.Level; level-- {
		if onlyOneBucketFilled(histograms[level]) {
			continue
		}
		mask, shift := maskAndShiftLSB(codec, p, level)
		_, heads, _ := prefixSums(histograms[level])
		copyByHistogram(bufs[cur], bufs[1-cur], heads, mask, shift, codec)
		cur = 1 - cur
	}

	if cur == 1 {
		copy(arr, scratch)
	}
}

// lsdRadixsortAux computes offset/max_level and optionally applies the
// narrow-key counting-sort heuristic from spec.md section 4.14 before
// falling back to the full LSD body.
func lsdRadixsortAux[T any, K RadixKey](arr []T, codec Codec[T, K], radix int, heuristic bool, minCs2 int) {
	if len(arr) <= lsdComparisonCutoff {
		lsdComparisonFallback(arr, codec)
		return
	}

	offset, _ := ComputeOffset(arr, codec, radix)
	maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)
	p := NewParams(radix, offset, maxLevel)

	if heuristic {
		switch {
		case maxLevel <= 1:
			countingSort(arr, codec, codec.Bits-offset)
		case maxLevel == 2 && len(arr) >= minCs2:
			countingSort(arr, codec, codec.Bits-offset)
		default:
			lsdRadixsortBody(arr, codec, p)
		}
		return
	}

	lsdRadixsortBody(arr, codec, p)
}

// SortLSD sorts arr using verge-sort preprocessing followed by per-run
// LSD and a k-way merge (spec.md section 4.6 / section 6, sort_lsd).
func SortLSD[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= lsdComparisonCutoff {
		lsdComparisonFallback(arr, codec)
		return nil
	}

	runs := vergeSortPreprocessing(arr, codec, DefaultMinRunLength, DefaultMaxRunFraction, func(sub []T) {
		lsdRadixsortAux(sub, codec, radix, false, 0)
	})
	kWayMerge(arr, codec, runs)
	return nil
}

// SortLSDHeuristic is the heuristic-enabled LSD variant (lsd_radixsort_heu
// in the source), switching to counting sort for narrow remaining key
// widths. minCs2 is the minimum element count at which a two-level
// counting sort is worth the wider table.
func SortLSDHeuristic[T any, K RadixKey](arr []T, codec Codec[T, K], radix, minCs2 int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= lsdComparisonCutoff {
		lsdComparisonFallback(arr, codec)
		return nil
	}

	runs := vergeSortPreprocessing(arr, codec, DefaultMinRunLength, DefaultMaxRunFraction, func(sub []T) {
		lsdRadixsortAux(sub, codec, radix, true, minCs2)
	})
	kWayMerge(arr, codec, runs)
	return nil
}
