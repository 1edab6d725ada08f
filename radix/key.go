// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "math"

// RadixKey is the constraint on the unsigned integer type a Codec projects
// elements into, favoring a constraint-interface generic over a runtime
// type switch: the compiler picks the concrete instantiation, so there is
// no per-element type assertion in the hot loop.
type RadixKey interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Codec describes how to project a caller's element type T into an
// unsigned Key of width Bits such that Key's natural ordering matches the
// caller's desired order on T. This is the Go rendering of the "element
// contract" in the source algorithm: since Go cannot attach methods to
// int32 or float64 directly, the contract is a value instead of an
// interface, analogous to how sort.Interface is a value capturing Less,
// Swap and Len, or comparisons are passed as a Func to slices.SortFunc.
//
// IntoKey must be a total, order-preserving injection. Bits is the key
// width B used to compute the offset and level count (see ComputeOffset).
// Validate is optional; when non-nil it runs once per element before the
// sort proceeds and should reject inputs with no well-defined order (NaN).
type Codec[T any, K RadixKey] struct {
	IntoKey  func(T) K
	Bits     int
	Validate func(T) error
}

// DefaultMask returns (1<<radix)-1 as a K, the mask used to pull a single
// digit out of a shifted key.
func (c Codec[T, K]) DefaultMask(radix int) K {
	return K((uint64(1) << uint(radix)) - 1)
}

// Extract reads the bucket index (0..2^radix) for v at the given mask and
// shift: (key(v) >> shift) & mask.
func (c Codec[T, K]) Extract(v T, mask K, shift uint) int {
	return int((c.IntoKey(v) >> shift) & mask)
}

// validate checks the codec is usable and runs its Validate hook (if any)
// over the whole slice, short-circuiting on the first failure. Called
// once at the top of every exported Sort* entry point.
func (c Codec[T, K]) validate(arr []T) error {
	if c.IntoKey == nil && len(arr) > 0 {
		return ErrEmptyCodec
	}
	if c.Validate == nil {
		return nil
	}
	for _, v := range arr {
		if err := c.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// --- primitive adapters -----------------------------------------------

// Uint8Codec, Uint16Codec, Uint32Codec, Uint64Codec project an unsigned
// integer type onto itself: the identity key, per spec.md section 4.1.

func Uint8Codec[T ~uint8]() Codec[T, uint8] {
	return Codec[T, uint8]{IntoKey: func(v T) uint8 { return uint8(v) }, Bits: 8}
}

func Uint16Codec[T ~uint16]() Codec[T, uint16] {
	return Codec[T, uint16]{IntoKey: func(v T) uint16 { return uint16(v) }, Bits: 16}
}

func Uint32Codec[T ~uint32]() Codec[T, uint32] {
	return Codec[T, uint32]{IntoKey: func(v T) uint32 { return uint32(v) }, Bits: 32}
}

func Uint64Codec[T ~uint64]() Codec[T, uint64] {
	return Codec[T, uint64]{IntoKey: func(v T) uint64 { return uint64(v) }, Bits: 64}
}

// UintCodec adapts the platform uint width. Bits is always 64: on a 64-bit
// platform this is equivalent to Uint64Codec, and on a 32-bit platform the
// upper 32 key bits are zero and ComputeOffset trims them.
func UintCodec[T ~uint]() Codec[T, uint64] {
	return Codec[T, uint64]{IntoKey: func(v T) uint64 { return uint64(v) }, Bits: 64}
}

// Int8Codec, Int16Codec, Int32Codec, Int64Codec implement the signed
// adapter from spec.md section 4.1: into_key adds 1<<(B-1), flipping the
// sign bit so two's-complement order becomes unsigned numeric order.

func Int8Codec[T ~int8]() Codec[T, uint8] {
	return Codec[T, uint8]{
		IntoKey: func(v T) uint8 { return uint8(v) ^ 0x80 },
		Bits:    8,
	}
}

func Int16Codec[T ~int16]() Codec[T, uint16] {
	return Codec[T, uint16]{
		IntoKey: func(v T) uint16 { return uint16(v) ^ 0x8000 },
		Bits:    16,
	}
}

func Int32Codec[T ~int32]() Codec[T, uint32] {
	return Codec[T, uint32]{
		IntoKey: func(v T) uint32 { return uint32(v) ^ 0x80000000 },
		Bits:    32,
	}
}

func Int64Codec[T ~int64]() Codec[T, uint64] {
	return Codec[T, uint64]{
		IntoKey: func(v T) uint64 { return uint64(v) ^ 0x8000000000000000 },
		Bits:    64,
	}
}

func IntCodec[T ~int]() Codec[T, uint64] {
	return Codec[T, uint64]{
		IntoKey: func(v T) uint64 { return uint64(v) ^ 0x8000000000000000 },
		Bits:    64,
	}
}

// Float32Codec implements the IEEE-754 ordering transform from spec.md
// section 4.1, using the same math.Float32bits reinterpret-cast pattern as
// a float<->int bit-cast: if the sign bit is clear, flip only the sign
// bit; otherwise flip every bit. NaN has no defined position and is
// rejected by Validate.
func Float32Codec[T ~float32]() Codec[T, uint32] {
	return Codec[T, uint32]{
		IntoKey: func(v T) uint32 {
			bits := math.Float32bits(float32(v))
			if bits&0x80000000 == 0 {
				return bits | 0x80000000
			}
			return ^bits
		},
		Bits: 32,
		Validate: func(v T) error {
			if math.IsNaN(float64(v)) {
				return ErrNaN
			}
			return nil
		},
	}
}

// Float64Codec is the float64 counterpart of Float32Codec.
func Float64Codec[T ~float64]() Codec[T, uint64] {
	return Codec[T, uint64]{
		IntoKey: func(v T) uint64 {
			bits := math.Float64bits(float64(v))
			if bits&0x8000000000000000 == 0 {
				return bits | 0x8000000000000000
			}
			return ^bits
		},
		Bits: 64,
		Validate: func(v T) error {
			if math.IsNaN(float64(v)) {
				return ErrNaN
			}
			return nil
		},
	}
}

// BoolCodec maps false/true to key 0/1, per spec.md section 4.1.
func BoolCodec[T ~bool]() Codec[T, uint8] {
	return Codec[T, uint8]{
		IntoKey: func(v T) uint8 {
			if v {
				return 1
			}
			return 0
		},
		Bits: 1,
	}
}
