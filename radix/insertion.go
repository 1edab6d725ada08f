// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// insertionSort is the universal base case for small slices (len <= 64),
// per spec.md section 4.10. It compares by projected key rather than a
// caller-supplied Less, since Codec.IntoKey is the only ordering the
// package knows about.
func insertionSort[T any, K RadixKey](arr []T, codec Codec[T, K]) {
	for i := 1; i < len(arr); i++ {
		v := arr[i]
		vk := codec.IntoKey(v)
		j := i - 1
		for j >= 0 && codec.IntoKey(arr[j]) > vk {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = v
	}
}

const insertionSortCutoff = 64
