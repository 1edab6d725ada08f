// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"sort"
	"testing"
)

func TestVergeSortPreprocessingRuns(t *testing.T) {
	codec := Int32Codec[int32]()

	t.Run("already_sorted_single_run", func(t *testing.T) {
		arr := []int32{1, 2, 3, 4, 5, 6, 7, 8}
		called := false
		runs := vergeSortPreprocessing(arr, codec, 2, 8, func(sub []int32) { called = true })
		if called {
			t.Errorf("sortFn should not run over an already-ascending slice")
		}
		if len(runs) != 1 || runs[0] != (Run{0, len(arr)}) {
			t.Errorf("got runs %v, want a single run covering the whole slice", runs)
		}
	})

	t.Run("coalesces_short_runs", func(t *testing.T) {
		arr := []int32{5, 1, 9, 2, 8, 3}
		// maxRunFraction 1 allows up to len(arr) natural runs, so the three
		// short natural runs here are coalesced rather than triggering the
		// fragmentation fallback.
		runs := vergeSortPreprocessing(arr, codec, 3, 1, func(sub []int32) {
			sort.Slice(sub, func(i, j int) bool { return sub[i] < sub[j] })
		})
		for _, r := range runs {
			if r.End-r.Start < 3 && r.End != len(arr) {
				t.Errorf("run %v shorter than minRunLength and not at the tail", r)
			}
		}
		for _, r := range runs {
			if !isSortedByKey(arr[r.Start:r.End], codec) {
				t.Errorf("run %v not individually sorted: %v", r, arr[r.Start:r.End])
			}
		}
	})

	t.Run("descending_run_is_reversed_in_place", func(t *testing.T) {
		arr := []int32{9, 7, 5, 3, 1}
		called := false
		runs := vergeSortPreprocessing(arr, codec, 2, 8, func(sub []int32) { called = true })
		if called {
			t.Errorf("a single descending run should be reversed, not handed to sortFn")
		}
		if len(runs) != 1 || runs[0] != (Run{0, len(arr)}) {
			t.Errorf("got runs %v, want a single run covering the whole slice", runs)
		}
		want := []int32{1, 3, 5, 7, 9}
		if !slicesEqual(arr, want) {
			t.Errorf("descending run not reversed in place: got %v, want %v", arr, want)
		}
	})

	t.Run("large_reverse_sorted_input_takes_the_reversed_run_fast_path", func(t *testing.T) {
		n := 1000
		arr := make([]int32, n)
		for i := range arr {
			arr[i] = int32(n - i)
		}
		called := false
		runs := vergeSortPreprocessing(arr, codec, 32, 8, func(sub []int32) { called = true })
		if called {
			t.Errorf("a fully reverse-sorted slice should take the reversed-run path, not the fragmentation fallback")
		}
		if len(runs) != 1 {
			t.Errorf("got %d runs for a single reverse-sorted input, want 1", len(runs))
		}
		if !isSortedByKey(arr, codec) {
			t.Errorf("reversed run is not ascending: %v", arr[:10])
		}
	})

	t.Run("too_fragmented_falls_back_to_one_run", func(t *testing.T) {
		arr := make([]int32, 64)
		for i := range arr {
			if i%2 == 0 {
				arr[i] = int32(i)
			} else {
				arr[i] = int32(-i)
			}
		}
		called := false
		runs := vergeSortPreprocessing(arr, codec, 2, 8, func(sub []int32) {
			called = true
			sort.Slice(sub, func(i, j int) bool { return sub[i] < sub[j] })
		})
		if !called {
			t.Errorf("expected fallback sortFn call over the whole slice")
		}
		if len(runs) != 1 {
			t.Errorf("got %d runs, want 1 after fragmentation fallback", len(runs))
		}
		if !isSortedByKey(arr, codec) {
			t.Errorf("fallback did not sort: %v", arr)
		}
	})
}

func TestKWayMerge(t *testing.T) {
	codec := Int32Codec[int32]()

	arr := []int32{1, 4, 7, 2, 5, 8, 3, 6, 9}
	runs := []Run{{0, 3}, {3, 6}, {6, 9}}
	kWayMerge(arr, codec, runs)

	want := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !slicesEqual(arr, want) {
		t.Errorf("got %v, want %v", arr, want)
	}
}

func TestKWayMergeSingleRunIsNoop(t *testing.T) {
	codec := Int32Codec[int32]()
	arr := []int32{3, 1, 2}
	kWayMerge(arr, codec, []Run{{0, 3}})
	want := []int32{3, 1, 2}
	if !slicesEqual(arr, want) {
		t.Errorf("single-run merge should be a no-op, got %v", arr)
	}
}
