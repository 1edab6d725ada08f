// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// skaLookaheadMinSize is the minimum bucket size at which a two-level
// combined histogram (radixRange^2 buckets) is worth building instead of
// falling back to a single-level American-flag-style partition. Below
// this, the O(radixRange^2) histogram setup cost is not amortized by the
// pass it saves (spec.md section 4.8).
const skaLookaheadMinSize = 4096

// skaSort is the Ska-style MSD entry point: whenever at least two digit
// levels remain and the current slice is large enough, it partitions by
// both digits in a single histogram+swap pass (skaTwoLevelRec); otherwise
// it degrades to the same single-level American-flag partition as
// americanFlagRec.
func skaSort[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) {
	if len(arr) <= insertionSortCutoff {
		insertionSort(arr, codec)
		return
	}

	offset, _ := ComputeOffset(arr, codec, radix)
	maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)
	if maxLevel == 0 {
		return
	}

	skaRec(arr, codec, NewParams(radix, offset, maxLevel))
}

// skaRec plans one level of look-ahead via getNextTwoHistograms before
// committing to a partition: it costs one histogram pass over arr either
// way, so computing both the current level's and the next level's
// histogram up front (rather than just the current level's) lets it skip
// work in two cases the single-histogram version could not see coming:
//
//   - the current level's digit is uniform across arr (onlyOneBucketFilled)
//     — nothing to partition, so recurse straight into the next level
//     instead of serialSwap-ing a no-op partition;
//   - the current level is not uniform but the NEXT level is — building
//     the combined radixRange^2 look-ahead histogram would buy no extra
//     discrimination over a single-level partition, so skip straight to
//     the single-level path and reuse the histogram already computed
//     instead of recomputing it.
func skaRec[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) {
	if len(arr) <= insertionSortCutoff {
		insertionSort(arr, codec)
		return
	}

	remaining := p.MaxLevel - p.Level
	twoAhead := remaining >= 2

	var histogram, next []int
	if twoAhead {
		pair := getNextTwoHistograms(arr, codec, p)
		histogram, next = pair[0], pair[1]
	} else {
		mask, shift := maskAndShift(codec, p, p.Level)
		histogram = getHistogram(arr, codec, mask, shift, p.RadixRange)
	}

	if onlyOneBucketFilled(histogram) {
		if p.Level+1 >= p.MaxLevel {
			return
		}
		skaRec(arr, codec, p.NewLevel(p.Level+1))
		return
	}

	if twoAhead && len(arr) >= skaLookaheadMinSize && !onlyOneBucketFilled(next) {
		skaTwoLevelRec(arr, codec, p)
		return
	}

	mask, shift := maskAndShift(codec, p, p.Level)
	pSums, heads, tails := prefixSums(histogram)
	serialSwap(arr, heads, tails, mask, shift, codec)

	if p.Level >= p.MaxLevel-1 {
		return
	}

	rest := arr
	for i := 0; i < p.RadixRange; i++ {
		bucketLen := pSums[i+1] - pSums[i]
		bucket := rest[:bucketLen]
		rest = rest[bucketLen:]
		if histogram[i] > 1 {
			skaRec(bucket, codec, p.NewLevel(p.Level+1))
		}
	}
}

// skaTwoLevelRec partitions arr by a combined two-digit key (level and
// level+1 together), saving a full histogram+swap pass relative to doing
// the two levels one at a time. The combined bucket count is
// radixRange^2; combinedBucket below decomposes an element's key into
// that joint index without needing a RadixKey wide enough to hold
// 2*radix bits, since it works in uint64 regardless of K's underlying
// width.
func skaTwoLevelRec[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) {
	bits2 := uint(2 * p.Radix)
	shift := shiftForLevel(codec.Bits, p.Offset, p.Radix, p.Level+1)
	mask2 := (uint64(1) << bits2) - 1
	n2 := 1 << bits2

	combinedBucket := func(v T) int {
		return int((uint64(codec.IntoKey(v)) >> shift) & mask2)
	}

	histogram := make([]int, n2)
	for _, v := range arr {
		histogram[combinedBucket(v)]++
	}
	pSums, heads, tails := prefixSums(histogram)

	for i := 0; i < n2-1; i++ {
		for heads[i] < tails[i] {
			bucket := combinedBucket(arr[heads[i]])
			for bucket != i {
				arr[heads[i]], arr[heads[bucket]] = arr[heads[bucket]], arr[heads[i]]
				heads[bucket]++
				bucket = combinedBucket(arr[heads[i]])
			}
			heads[i]++
		}
	}

	if p.Level+2 >= p.MaxLevel {
		return
	}

	rest := arr
	for i := 0; i < n2; i++ {
		bucketLen := pSums[i+1] - pSums[i]
		bucket := rest[:bucketLen]
		rest = rest[bucketLen:]
		if histogram[i] > 1 {
			skaRec(bucket, codec, p.NewLevel(p.Level+2))
		}
	}
}

// SortSka sorts arr using the Ska algorithm (spec.md section 4.8 /
// section 6, sort_ska).
func SortSka[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= 1 {
		return nil
	}
	skaSort(arr, codec, radix)
	return nil
}
