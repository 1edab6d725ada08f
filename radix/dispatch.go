// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"os"
	"sync/atomic"
)

// Strategy identifies which sort body the dispatcher chose for a given
// call (spec.md section 9).
type Strategy int32

const (
	StrategyComparison Strategy = iota
	StrategyCounting
	StrategyLSD
	StrategyMSD
	StrategySka
	StrategyDLSD
	StrategyAmericanFlag
)

func (s Strategy) String() string {
	switch s {
	case StrategyComparison:
		return "comparison"
	case StrategyCounting:
		return "counting"
	case StrategyLSD:
		return "lsd"
	case StrategyMSD:
		return "msd"
	case StrategySka:
		return "ska"
	case StrategyDLSD:
		return "dlsd"
	case StrategyAmericanFlag:
		return "american_flag"
	default:
		return "unknown"
	}
}

var lastStrategy atomic.Int32

// LastStrategy reports which Strategy the most recent call to Sort or
// SortWithRadix on this process chose, letting a caller or a benchmark
// confirm which code path actually ran for a given input shape.
func LastStrategy() Strategy {
	return Strategy(lastStrategy.Load())
}

func setLastStrategy(s Strategy) {
	lastStrategy.Store(int32(s))
}

// forceStrategyEnv is the environment variable read once per call to force
// a specific Strategy (spec.md section 9). Recognized values are the
// Strategy.String() names.
const forceStrategyEnv = "VORACIOUS_FORCE_STRATEGY"

func forcedStrategy() (Strategy, bool) {
	v := os.Getenv(forceStrategyEnv)
	switch v {
	case "":
		return 0, false
	case "comparison":
		return StrategyComparison, true
	case "counting":
		return StrategyCounting, true
	case "lsd":
		return StrategyLSD, true
	case "msd":
		return StrategyMSD, true
	case "ska":
		return StrategySka, true
	case "dlsd":
		return StrategyDLSD, true
	case "american_flag":
		return StrategyAmericanFlag, true
	default:
		return 0, false
	}
}

// minCs2Dispatch is the minimum element count at which the dispatcher
// prefers a two-level counting sort over LSD when max_level<=2 (spec.md
// section 4.14's cs2_min).
const minCs2Dispatch = 4096

// skaDispatchThreshold is the element count above which the dispatcher
// prefers Ska over LSD: Ska's extra two-level histogram setup cost is
// amortized once there is enough data for the saved pass to matter.
const skaDispatchThreshold = 1 << 20

// Sort is the top-level dispatcher (sort_default in spec.md section 6): it
// inspects the input's size and the codec's key width to choose among
// comparison sort, counting sort, Ska, or verge-sort-preprocessed LSD,
// recording its choice for LastStrategy.
func Sort[T any, K RadixKey](arr []T, codec Codec[T, K]) error {
	return SortWithRadix(arr, codec, 8)
}

// SortWithRadix is Sort with an explicit digit width (sort_with_radix in
// spec.md section 6).
func SortWithRadix[T any, K RadixKey](arr []T, codec Codec[T, K], radix int) error {
	if err := codec.validate(arr); err != nil {
		return err
	}
	if codec.Bits > 64 {
		return ErrKeyWidthOverflow
	}
	if err := checkRadix(radix); err != nil {
		return err
	}
	if len(arr) <= 1 {
		return nil
	}

	if strategy, ok := forcedStrategy(); ok {
		return dispatchStrategy(arr, codec, radix, strategy)
	}

	if len(arr) <= lsdComparisonCutoff {
		setLastStrategy(StrategyComparison)
		lsdComparisonFallback(arr, codec)
		return nil
	}

	if codec.Bits <= 8 {
		setLastStrategy(StrategyCounting)
		countingSort(arr, codec, codec.Bits)
		return nil
	}

	offset, _ := ComputeOffset(arr, codec, radix)
	maxLevel := ComputeMaxLevel(codec.Bits, offset, radix)

	if maxLevel <= 2 && len(arr) >= minCs2Dispatch {
		setLastStrategy(StrategyCounting)
		countingSort(arr, codec, codec.Bits-offset)
		return nil
	}

	if len(arr) >= skaDispatchThreshold {
		setLastStrategy(StrategySka)
		runs := vergeSortPreprocessing(arr, codec, DefaultMinRunLength, DefaultMaxRunFraction, func(sub []T) {
			skaSort(sub, codec, radix)
		})
		kWayMerge(arr, codec, runs)
		return nil
	}

	setLastStrategy(StrategyLSD)
	runs := vergeSortPreprocessing(arr, codec, DefaultMinRunLength, DefaultMaxRunFraction, func(sub []T) {
		lsdRadixsortAux(sub, codec, radix, true, minCs2Dispatch)
	})
	kWayMerge(arr, codec, runs)
	return nil
}

// dispatchStrategy runs a specific, caller- or environment-forced
// Strategy directly, bypassing the size/width heuristics in
// SortWithRadix.
func dispatchStrategy[T any, K RadixKey](arr []T, codec Codec[T, K], radix int, strategy Strategy) error {
	setLastStrategy(strategy)
	switch strategy {
	case StrategyComparison:
		lsdComparisonFallback(arr, codec)
		return nil
	case StrategyCounting:
		offset, _ := ComputeOffset(arr, codec, radix)
		countingSort(arr, codec, codec.Bits-offset)
		return nil
	case StrategyMSD:
		msdSort(arr, codec, radix)
		return nil
	case StrategySka:
		skaSort(arr, codec, radix)
		return nil
	case StrategyAmericanFlag:
		americanFlagSort(arr, codec, radix)
		return nil
	case StrategyDLSD:
		return SortDLSD(arr, codec, radix)
	case StrategyLSD:
		return SortLSD(arr, codec, radix)
	default:
		return SortLSD(arr, codec, radix)
	}
}
