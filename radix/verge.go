// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "github.com/justanotherdot/voracious-go/internal/assert"

// DefaultMinRunLength is the minimum length a run produced by
// vergeSortPreprocessing is allowed to have. Shorter natural runs are
// coalesced with their successors until the combined run reaches this
// length (spec.md section 9, open question).
const DefaultMinRunLength = 32

// DefaultMaxRunFraction is the denominator used to cap how many distinct
// runs vergeSortPreprocessing will track: at most len(arr)/
// DefaultMaxRunFraction runs. Data with no usable pre-sortedness produces
// close to len(arr)/2 tiny natural runs; tracking that many would make the
// later k-way merge slower than just sorting the whole slice in one pass,
// so exceeding the cap falls back to a single run spanning the input
// (spec.md section 9, open question).
const DefaultMaxRunFraction = 8

// Run is a half-open [Start, End) slice of an already-sorted (ascending by
// codec key) span of the original array, produced by vergeSortPreprocessing
// and consumed by kWayMerge.
type Run struct {
	Start int
	End   int
}

// runExtent finds the maximal run starting at i: either non-decreasing
// (codec.IntoKey(arr[j-1]) <= codec.IntoKey(arr[j])) or, if the first pair
// is out of order, strictly decreasing. Strict (not <=) descending
// comparison keeps the scan stable: a run of equal keys is always treated
// as ascending, so reversing a descending run below never reorders equal
// elements relative to each other.
func runExtent[T any, K RadixKey](arr []T, codec Codec[T, K], i int) (end int, descending bool) {
	n := len(arr)
	if i+1 >= n {
		return i + 1, false
	}
	if codec.IntoKey(arr[i]) > codec.IntoKey(arr[i+1]) {
		j := i + 2
		for j < n && codec.IntoKey(arr[j-1]) > codec.IntoKey(arr[j]) {
			j++
		}
		return j, true
	}
	j := i + 1
	for j < n && codec.IntoKey(arr[j-1]) <= codec.IntoKey(arr[j]) {
		j++
	}
	return j, false
}

// reverseRange reverses arr[start:end] in place.
func reverseRange[T any](arr []T, start, end int) {
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// vergeSortPreprocessing implements spec.md section 4.11: it scans arr for
// maximal ascending or descending runs, reverses descending runs in place
// (so every recorded run is ascending), coalesces any run shorter than
// minRunLength with its neighbors (sorting the coalesced span with sortFn,
// since a coalesced span is not itself guaranteed ascending), and returns
// the resulting list of disjoint, individually-sorted runs for kWayMerge
// to fold back together.
//
// If the natural run count would exceed len(arr)/maxRunFraction — evidence
// the input has no usable pre-sortedness — preprocessing gives up and
// treats the whole slice as a single run, sorted in one sortFn call.
func vergeSortPreprocessing[T any, K RadixKey](arr []T, codec Codec[T, K], minRunLength, maxRunFraction int, sortFn func([]T)) []Run {
	n := len(arr)
	if n == 0 {
		return nil
	}

	maxRuns := n
	if maxRunFraction > 0 {
		maxRuns = n / maxRunFraction
	}
	if maxRuns < 1 {
		maxRuns = 1
	}

	naturalRunCount := 0
	for i := 0; i < n; {
		j, _ := runExtent(arr, codec, i)
		naturalRunCount++
		i = j
		if naturalRunCount > maxRuns {
			sortFn(arr)
			return []Run{{Start: 0, End: n}}
		}
	}

	var runs []Run
	i := 0
	for i < n {
		j, descending := runExtent(arr, codec, i)
		if descending {
			reverseRange(arr, i, j)
		}

		if j-i < minRunLength {
			end := i + minRunLength
			if end > n {
				end = n
			}
			sortFn(arr[i:end])
			runs = append(runs, Run{Start: i, End: end})
			i = end
			continue
		}

		runs = append(runs, Run{Start: i, End: j})
		i = j
	}

	assert.Invariant(len(runs) == 0 || runs[len(runs)-1].End == n,
		"vergeSortPreprocessing: runs must cover the array up to its end")
	return runs
}

// VergeSortTuned runs the default dispatch strategy (verge-sort
// preprocessing, heuristic LSD per run, k-way merge) with caller-supplied
// run-length tuning instead of DefaultMinRunLength/DefaultMaxRunFraction
// (spec.md section 9, open question).
func VergeSortTuned[T any, K RadixKey](arr []T, codec Codec[T, K], radix, minRunLength, maxRunFraction int) error {
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

	runs := vergeSortPreprocessing(arr, codec, minRunLength, maxRunFraction, func(sub []T) {
		lsdRadixsortAux(sub, codec, radix, true, minCs2Dispatch)
	})
	kWayMerge(arr, codec, runs)
	return nil
}
