// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// serialSwap performs the in-place cycle-following swap pass described in
// spec.md section 4.4: for each bucket i, walk heads[i] forward, and
// whenever the element sitting there doesn't belong in bucket i, swap it
// directly into its own bucket's head and advance that head instead. Every
// displaced element is placed by the time the loop for bucket i finishes,
// so the last bucket never needs its own pass.
func serialSwap[T any, K RadixKey](arr []T, heads []int, tails []int, mask K, shift uint, codec Codec[T, K]) {
	for i := 0; i < len(heads)-1; i++ {
		for heads[i] < tails[i] {
			bucket := codec.Extract(arr[heads[i]], mask, shift)
			for bucket != i {
				arr[heads[i]], arr[heads[bucket]] = arr[heads[bucket]], arr[heads[i]]
				heads[bucket]++
				bucket = codec.Extract(arr[heads[i]], mask, shift)
			}
			heads[i]++
		}
	}
}

// americanFlagRec is the recursive body of American flag sort (Ska's
// single-level path in skaRec follows the same shape): base-case insertion sort below
// insertionSortCutoff, otherwise histogram, partition in place via
// serialSwap, then recurse into every bucket with more than one element.
func americanFlagRec[T any, K RadixKey](arr []T, codec Codec[T, K], p Params) {
	if len(arr) <= insertionSortCutoff {
		insertionSort(arr, codec)
		return
	}

	mask, shift := maskAndShift(codec, p, p.Level)

	var histogram []int
	if len(arr) >= msdParallelThreshold {
		histogram = getHistogramMT(arr, codec, mask, shift, p.RadixRange, DefaultPool())
	} else {
		histogram = getHistogram(arr, codec, mask, shift, p.RadixRange)
	}
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
			americanFlagRec(bucket, codec, p.NewLevel(p.Level+1))
		}
	}
}

// americanFlagSort is the entry point used internally by SortAmericanFlag
// and by the dispatcher's forced-strategy path. It computes offset/max_level itself, per
// spec.md section 4.4.
func americanFlagSort[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) {
	if len(arr) <= insertionSortCutoff {
		insertionSort(arr, codec)
		return
	}

	offset, _ := ComputeOffset(arr, codec, radix)
	maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)
	if maxLevel == 0 {
		return
	}

	americanFlagRec(arr, codec, NewParams(radix, offset, maxLevel))
}

// SortAmericanFlag sorts arr in place using the American flag algorithm
// (spec.md section 4.4 / section 6, sort_american_flag).
func SortAmericanFlag[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= 1 {
		return nil
	}
	americanFlagSort(arr, codec, radix)
	return nil
}
