// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// msdStringBuckets is 256 byte values plus one sentinel bucket (index 0)
// for "string ended before this position", placed before every byte value
// so a shorter string sorts ahead of any string sharing its prefix
// (spec.md section 4.13). This mirrors the byte-table-with-sentinel
// approach used by other radix string sort implementations in the pack.
const msdStringBuckets = 257

const stringInsertionCutoff = 20

// byteAt returns v[d]+1, or 0 (the end-of-string sentinel) if d is past
// the end of v.
func byteAt(v []byte, d int) int {
	if d < len(v) {
		return int(v[d]) + 1
	}
	return 0
}

// msdStringRecBytes is the recursive MSD body over byte slices, operating
// on d, the current byte offset. Bucket 0 (strings that ended at d) needs
// no further recursion: every element in it is already equal up to its own
// length, and a shorter string never needs reordering against another
// string sharing its full prefix.
func msdStringRecBytes[T any](arr []T, asBytes func(T) []byte, d int) {
	if len(arr) <= 1 {
		return
	}
	if len(arr) <= stringInsertionCutoff {
		insertionSortBytes(arr, asBytes, d)
		return
	}

	var counts [msdStringBuckets + 1]int
	for _, v := range arr {
		counts[byteAt(asBytes(v), d)+1]++
	}
	for r := 0; r < msdStringBuckets; r++ {
		counts[r+1] += counts[r]
	}

	starts := counts
	aux := make([]T, len(arr))
	for _, v := range arr {
		b := byteAt(asBytes(v), d)
		aux[starts[b]] = v
		starts[b]++
	}
	copy(arr, aux)

	for r := 1; r < msdStringBuckets; r++ {
		start, end := counts[r], counts[r+1]
		if end-start > 1 {
			msdStringRecBytes(arr[start:end], asBytes, d+1)
		}
	}
}

// insertionSortBytes is the base case for msdStringRecBytes: a plain
// byte-lexicographic insertion sort, used below stringInsertionCutoff
// where MSD's per-level histogram overhead is not worth paying.
func insertionSortBytes[T any](arr []T, asBytes func(T) []byte, d int) {
	for i := 1; i < len(arr); i++ {
		v := arr[i]
		vb := asBytes(v)
		j := i - 1
		for j >= 0 && bytesGreaterFrom(asBytes(arr[j]), vb, d) {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = v
	}
}

// bytesGreaterFrom reports whether a sorts after b when compared
// byte-for-byte starting at offset d (bytes before d are already known
// equal across the slice being sorted).
func bytesGreaterFrom(a, b []byte, d int) bool {
	for i := d; ; i++ {
		ab, bb := byteAt(a, i), byteAt(b, i)
		if ab != bb {
			return ab > bb
		}
		if ab == 0 {
			return false
		}
	}
}

// SortMSDString sorts a slice of string-like values byte-lexicographically
// using the 257-wide MSD string sort (spec.md section 4.13 / section 6,
// sort_msd_string).
func SortMSDString[T ~string](arr []T) error {
	msdStringRecBytes(arr, func(v T) []byte { return []byte(v) }, 0)
	return nil
}

// SortMSDBytes is SortMSDString's counterpart for []byte-like values.
func SortMSDBytes[T ~[]byte](arr []T) error {
	msdStringRecBytes(arr, func(v T) []byte { return v }, 0)
	return nil
}
