// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"testing"
	"testing/quick"
)

func TestSortCountingUint8(t *testing.T) {
	arr := []uint8{200, 5, 17, 0, 255, 5}
	want := []uint8{0, 5, 5, 17, 200, 255}

	if err := SortCounting(arr, Uint8Codec[uint8]()); err != nil {
		t.Fatalf("SortCounting: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("got %v, want %v", arr, want)
	}
}

func TestSortBoolean(t *testing.T) {
	arr := []bool{true, false, true, false, false}
	want := []bool{false, false, false, true, true}

	if err := SortBoolean(arr); err != nil {
		t.Fatalf("SortBoolean: %v", err)
	}
	if !slicesEqual(arr, want) {
		t.Errorf("got %v, want %v", arr, want)
	}
}

func TestCountingSortMTMatchesSerial(t *testing.T) {
	codec := Uint16Codec[uint16]()

	n := countingParallelThreshold + 777
	arr := make([]uint16, n)
	for i := range arr {
		arr[i] = uint16((i*2654435761 + 31) % 65536)
	}

	got := append([]uint16(nil), arr...)
	countingSort(got, codec, 16)

	if !isSortedByKey(got, codec) {
		t.Errorf("parallel counting sort produced an unsorted result")
	}

	counts := make(map[uint16]int, n)
	for _, v := range arr {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("value %d count mismatch by %d", v, c)
		}
	}
}

func TestQuickSortCountingAgreesWithReference(t *testing.T) {
	codec := Uint8Codec[uint8]()

	f := func(xs []uint8) bool {
		got := append([]uint8(nil), xs...)
		if err := SortCounting(got, codec); err != nil {
			t.Fatalf("SortCounting: %v", err)
		}
		return isSortedByKey(got, codec) && isPermutationUint8(got, xs)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func isPermutationUint8(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	var counts [256]int
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
