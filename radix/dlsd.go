// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// DefaultDivergenceThreshold is the fraction of elements that, if they
// all land in a single bucket at some LSD level, is taken as evidence of
// residual pre-sortedness: the source algorithm's own DLSD heuristic
// threshold is not part of its public surface (spec.md section 9, open
// question), so this value is ours, exposed for tuning.
const DefaultDivergenceThreshold = 0.90

// dlsdRadixsortBody runs the same level-by-level distribution as
// lsdRadixsortBody, but after each level checks whether one bucket holds
// more than threshold of the remaining elements. If so, the remaining
// (more significant, not-yet-processed) digit positions are handled by a
// single out-of-place MSD pass (msdRecCopy) over the live buffer instead
// of continuing level-by-level: once enough mass has collapsed into one
// bucket, LSD keeps re-partitioning a slice that is already almost
// sorted, while an MSD pass converges in one recursive sweep restricted
// to the digits LSD has not yet touched.
//
// The diverting pass must be msdRecCopy, not americanFlagRec: by the time
// divergence fires at level, the digits below it are already stably
// sorted by the LSD passes run so far, and americanFlagRec's serialSwap
// is not stable — it would scramble that established order inside any
// leaf bucket above insertionSortCutoff that shares digits 0..level.
// msdRecCopy distributes by copy instead of in-place swap, which
// preserves the relative order of elements that land in the same bucket,
// so the low digits LSD already settled survive untouched.
func dlsdRadixsortBody[T any, K RadixKey](arr []T, codec Codec[T, K], p Params, threshold float64) {
	if len(arr) <= lsdComparisonCutoff {
		lsdComparisonFallback(arr, codec)
		return
	}

	scratch := make([]T, len(arr))
	histograms := getFullHistogramsFast(arr, codec, p)

	bufs := [2][]T{arr, scratch}
	cur := 0

	for level := p.MaxLevel - 1; level >= p.Level; level-- {
		h := histograms[level]
		if onlyOneBucketFilled(h) {
			continue
		}

		if diverges(h, len(arr), threshold) {
			remaining := Params{
				Level:      0,
				Radix:      p.Radix,
				Offset:     p.Offset,
				MaxLevel:   level + 1,
				RadixRange: p.RadixRange,
			}
			msdRecCopy(bufs[cur], bufs[1-cur], codec, remaining)
			break
		}

		mask, shift := maskAndShiftLSB(codec, p, level)
		_, heads, _ := prefixSums(h)
		copyByHistogram(bufs[cur], bufs[1-cur], heads, mask, shift, codec)
		cur = 1 - cur
	}

	if cur == 1 {
		copy(arr, scratch)
	}
}

// diverges reports whether the largest bucket in h holds more than
// threshold of n elements.
func diverges(h []int, n int, threshold float64) bool {
	if n == 0 {
		return false
	}
	max := 0
	for _, c := range h {
		if c > max {
			max = c
		}
	}
	return float64(max)/float64(n) > threshold
}

// SortDLSD sorts arr using the diverting-LSD algorithm (spec.md section
// 4.7 / section 6, sort_dlsd), with verge-sort preprocessing and a k-way
// merge exactly as SortLSD.
func SortDLSD[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	return SortDLSDTuned(arr, codec, radix, DefaultDivergenceThreshold)
}

// SortDLSDTuned is SortDLSD with an explicit divergence threshold, for
// callers who want to verify behavior against their own data rather than
// the default (spec.md section 9, open question).
func SortDLSDTuned[T any, K RadixKey](arr []T, codec Codec[T, K], radix int, threshold float64) error {
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
		offset, _ := ComputeOffset(sub, codec, radix)
		maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)
		if maxLevel == 0 {
			return
		}
		dlsdRadixsortBody(sub, codec, NewParams(radix, offset, maxLevel), threshold)
	})
	kWayMerge(arr, codec, runs)
	return nil
}
