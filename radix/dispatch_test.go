// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"sort"
	"testing"
)

func TestSortSelectsCountingForNarrowKeys(t *testing.T) {
	arr := make([]uint8, 500)
	for i := range arr {
		arr[i] = uint8(255 - i%256)
	}
	if err := Sort(arr, Uint8Codec[uint8]()); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if LastStrategy() != StrategyCounting {
		t.Errorf("LastStrategy() = %v, want StrategyCounting", LastStrategy())
	}
}

func TestSortSelectsComparisonForSmallInput(t *testing.T) {
	arr := []int32{3, 1, 2}
	if err := Sort(arr, Int32Codec[int32]()); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if LastStrategy() != StrategyComparison {
		t.Errorf("LastStrategy() = %v, want StrategyComparison", LastStrategy())
	}
}

func TestForceStrategyEnvOverride(t *testing.T) {
	t.Setenv(forceStrategyEnv, "american_flag")

	arr := make([]int32, 500)
	for i := range arr {
		arr[i] = int32(500 - i)
	}
	if err := Sort(arr, Int32Codec[int32]()); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if LastStrategy() != StrategyAmericanFlag {
		t.Errorf("LastStrategy() = %v, want StrategyAmericanFlag", LastStrategy())
	}

	want := append([]int32(nil), arr...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if !slicesEqual(arr, want) {
		t.Errorf("forced strategy produced wrong result: %v", arr)
	}
}

func TestStrategyStringNames(t *testing.T) {
	cases := []struct {
		s    Strategy
		want string
	}{
		{StrategyComparison, "comparison"},
		{StrategyCounting, "counting"},
		{StrategyLSD, "lsd"},
		{StrategyMSD, "msd"},
		{StrategySka, "ska"},
		{StrategyDLSD, "dlsd"},
		{StrategyAmericanFlag, "american_flag"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", c.s, got, c.want)
		}
	}
}
