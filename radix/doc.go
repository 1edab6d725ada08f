// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

// Package radix implements a family of radix sorting algorithms over
// fixed-width, bit-sortable values and variable-length byte strings.
//
// The package does not ask callers to implement an interface on their
// element type (Go has no way to attach methods to the built-in numeric
// types). Instead it follows the same constraint-driven generic style as
// github.com/ajroetker/go-highway's Lanes/Integers/Floats constraints: a
// caller supplies a small Codec value describing how to project their
// element type into an unsigned integer Key whose natural ordering agrees
// with the caller's desired order, and the package's generic sort bodies
// do the rest.
//
//	ints := []int32{3, -1, 4, -2, 0}
//	radix.Sort(ints, radix.Int32Codec[int32]())
//
// All algorithms here are unstable and reject NaN in floating-point input.
package radix
