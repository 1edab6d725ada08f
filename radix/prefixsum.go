// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "github.com/justanotherdot/voracious-go/internal/assert"

// prefixSums turns a histogram into its running prefix sums plus the two
// cursor views derived from it, per spec.md section 4.3:
//
//	pSums[0] = 0; pSums[i+1] = pSums[i] + histogram[i]
//	heads = pSums[:len(histogram)]   (mutable, advanced during partitioning)
//	tails = pSums[1:]                (immutable bucket ends)
func prefixSums(histogram []int) (pSums, heads, tails []int) {
	pSums = make([]int, len(histogram)+1)
	for i, c := range histogram {
		pSums[i+1] = pSums[i] + c
	}
	heads = append([]int(nil), pSums[:len(histogram)]...)
	tails = pSums[1:]
	assert.Invariant(len(tails) == 0 || tails[len(tails)-1] == pSums[len(pSums)-1],
		"prefixSums: last tail must equal the grand total")
	return pSums, heads, tails
}

// onlyOneBucketFilled reports whether at most one bucket in histogram is
// non-empty, the LSD/DLSD skip condition from spec.md section 4.6.
func onlyOneBucketFilled(histogram []int) bool {
	count := 0
	for _, v := range histogram {
		if v > 0 {
			count++
			if count > 1 {
				return false
			}
		}
	}
	return true
}
