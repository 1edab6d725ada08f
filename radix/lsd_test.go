// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"sort"
	"testing"
)

func TestSortLSDSkipsUniformLevels(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := 1000
	arr := make([]uint32, n)
	for i := range arr {
		// high byte fixed at 0x7A for every element: the top level's
		// histogram has exactly one non-empty bucket and should be
		// skipped rather than redundantly redistributed. The low byte is
		// scrambled so verge preprocessing finds too many runs and hands
		// the whole slice to a single LSD pass.
		arr[i] = 0x7A000000 | uint32((i*177)%256)
	}

	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if err := SortLSD(arr, codec, 8); err != nil {
		t.Fatalf("SortLSD: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("SortLSD with a uniform high byte produced a wrong result")
	}
}

func TestSortLSDNonDividingRadixCoversLowBits(t *testing.T) {
	// radix=5 does not evenly divide 32, so offset is forced to 0 once
	// values span the top bits, and the least significant digit sits in a
	// partial, non-full-width group. Every value here shares its top bits
	// and differs only in the low 3 bits, so a dropped least-significant
	// digit would leave the slice unsorted. The low bits are scrambled so
	// verge preprocessing finds too many runs and hands the whole slice to
	// a single LSD pass.
	codec := Uint32Codec[uint32]()

	n := 200
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = (1 << 30) | uint32((i*5)%8)
	}
	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if err := SortLSD(arr, codec, 5); err != nil {
		t.Fatalf("SortLSD: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("SortLSD with radix=5 dropped the least significant digit: got %v, want %v", arr, want)
	}
}

func TestSortWithRadixNonDividingRadixCoversLowBits(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := 200
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = (1 << 30) | uint32((i*5)%8)
	}
	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for _, radix := range []int{4, 5, 6, 7, 8} {
		got := append([]uint32(nil), arr...)
		if err := SortWithRadix(got, codec, radix); err != nil {
			t.Fatalf("SortWithRadix radix=%d: %v", radix, err)
		}
		if !slicesEqual(got, want) {
			t.Errorf("SortWithRadix radix=%d: got %v, want %v", radix, got, want)
		}
	}
}

func TestSortLSDHeuristicNarrowWidth(t *testing.T) {
	codec := Uint32Codec[uint32]()

	arr := make([]uint32, 300)
	for i := range arr {
		arr[i] = uint32(299 - i)
	}
	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if err := SortLSDHeuristic(arr, codec, 8, 64); err != nil {
		t.Fatalf("SortLSDHeuristic: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("got %v, want %v", arr, want)
	}
}
