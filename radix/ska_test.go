// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"sort"
	"testing"
)

func TestSortSkaTwoLevelLookahead(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := skaLookaheadMinSize + 500
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = uint32((i*2654435761 + 7) % (1 << 20))
	}

	got := append([]uint32(nil), arr...)
	if err := SortSka(got, codec, 8); err != nil {
		t.Fatalf("SortSka: %v", err)
	}

	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if !slicesEqual(got, want) {
		t.Errorf("two-level Ska lookahead produced a wrong result")
	}
}

func TestSortSkaSkipsUniformTopDigit(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := skaLookaheadMinSize + 500
	arr := make([]uint32, n)
	for i := range arr {
		// top byte fixed at 0x7A for every element: the look-ahead
		// histogram for the current level has exactly one non-empty
		// bucket, so skaRec should recurse straight into the next level
		// rather than partitioning a no-op digit.
		arr[i] = 0x7A000000 | uint32(i%(1<<24))
	}

	got := append([]uint32(nil), arr...)
	if err := SortSka(got, codec, 8); err != nil {
		t.Fatalf("SortSka: %v", err)
	}

	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if !slicesEqual(got, want) {
		t.Errorf("SortSka with a uniform top byte produced a wrong result")
	}
}

func TestSortSkaSkipsTwoLevelWhenNextDigitUniform(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := skaLookaheadMinSize + 500
	arr := make([]uint32, n)
	for i := range arr {
		// top byte varies (so the current level is not uniform), but the
		// second byte is fixed at 0x55 for every element: the combined
		// two-digit look-ahead histogram would buy no discrimination over
		// a single-level partition, so skaRec should fall back to the
		// single-level path instead of skaTwoLevelRec.
		top := uint32(i % 256)
		arr[i] = (top << 24) | 0x00550000 | uint32(i%(1<<16))
	}

	got := append([]uint32(nil), arr...)
	if err := SortSka(got, codec, 8); err != nil {
		t.Fatalf("SortSka: %v", err)
	}

	want := append([]uint32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if !slicesEqual(got, want) {
		t.Errorf("SortSka with a uniform second byte produced a wrong result")
	}
}

func TestSortSkaSmallFallsBackToAmericanFlagShape(t *testing.T) {
	arr := []int32{5, -3, 0, 17, -1, 9, 2}
	want := []int32{-3, -1, 0, 2, 5, 9, 17}

	if err := SortSka(arr, Int32Codec[int32](), 8); err != nil {
		t.Fatalf("SortSka: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("got %v, want %v", arr, want)
	}
}
