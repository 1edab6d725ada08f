// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// thielMinCs2 tunes SortThiel's counting-sort crossover tighter than the
// dispatcher's default (minCs2Dispatch): the source algorithm's
// thiel_radixsort is itself not part of the retrieved reference material,
// only named in its test suite (sorts.rs), so this is our own rendering of
// "a tuned LSD variant" per spec.md section 6 / section 9 rather than a
// port of its internals.
const thielMinCs2 = 1024

// SortThiel is the tuned-LSD variant named sort_thiel in spec.md section 6:
// verge-sort preprocessing followed by heuristic LSD with a lower
// counting-sort crossover than SortLSDHeuristic's default, favoring
// counting sort sooner for narrow remaining key widths.
func SortThiel[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	return SortLSDHeuristic(arr, codec, radix, thielMinCs2)
}
