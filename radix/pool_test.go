// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "testing"

func TestPoolParallelForChunks(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	n := 97
	covered := make([]int, n)
	pool.parallelForChunks(n, 4, func(worker, start, end int) {
		for i := start; i < end; i++ {
			covered[i]++
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Errorf("index %d covered %d times, want exactly 1", i, c)
		}
	}
}

func TestDefaultPoolIsSingleton(t *testing.T) {
	a := DefaultPool()
	b := DefaultPool()
	if a != b {
		t.Errorf("DefaultPool returned distinct pools across calls")
	}
}

func TestMSDParallelPathMatchesSerial(t *testing.T) {
	codec := Uint32Codec[uint32]()

	n := msdParallelThreshold + 1000
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = uint32((i*2654435761 + 17) % 1_000_003)
	}

	got := append([]uint32(nil), arr...)
	if err := SortMSD(got, codec, 8); err != nil {
		t.Fatalf("SortMSD: %v", err)
	}
	if !isSortedByKey(got, codec) {
		t.Errorf("parallel MSD path produced an unsorted result")
	}
	if !isPermutationUint32(got, arr) {
		t.Errorf("parallel MSD path lost or duplicated elements")
	}
}

func isPermutationUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[uint32]int, len(a))
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
