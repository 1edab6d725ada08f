// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

// Command voraciousbench generates a random or adversarial uint32 slice,
// sorts it with the requested strategy, and reports the elapsed time and
// which algorithm the dispatcher actually chose.
//
// Usage:
//
//	voraciousbench -n 1000000 -strategy auto -shape random
//	voraciousbench -n 1000000 -strategy counting -shape sorted
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/justanotherdot/voracious-go/radix"
)

var (
	n        = flag.Int("n", 1_000_000, "number of elements to sort")
	strategy = flag.String("strategy", "auto", "comparison,counting,lsd,msd,ska,dlsd,american_flag,auto")
	shape    = flag.String("shape", "random", "random,sorted,reverse,skewed")
	radixN   = flag.Int("radix", 8, "bits per digit (4..8)")
	seed     = flag.Int64("seed", 1, "PRNG seed")
)

func main() {
	flag.Parse()

	if *n < 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be non-negative\n\n")
		flag.Usage()
		os.Exit(1)
	}

	arr := generate(*n, *shape, *seed)
	codec := radix.Uint32Codec[uint32]()

	if *strategy != "auto" {
		if err := os.Setenv("VORACIOUS_FORCE_STRATEGY", *strategy); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	err := radix.SortWithRadix(arr, codec, *radixN)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("n=%d shape=%s radix=%d strategy=%s elapsed=%s\n",
		*n, *shape, *radixN, radix.LastStrategy(), elapsed)
}

// generate builds an n-element slice with the requested pre-sortedness
// shape, mirroring the adversarial input shapes spec.md section 8 exercises.
func generate(n int, shape string, seed int64) []uint32 {
	arr := make([]uint32, n)
	rng := rand.New(rand.NewSource(seed))

	switch shape {
	case "sorted":
		for i := range arr {
			arr[i] = uint32(i)
		}
	case "reverse":
		for i := range arr {
			arr[i] = uint32(n - i)
		}
	case "skewed":
		for i := range arr {
			if i%20 == 0 {
				arr[i] = uint32(i)
			} else {
				arr[i] = 0x10000000
			}
		}
	default:
		for i := range arr {
			arr[i] = rng.Uint32()
		}
	}
	return arr
}
