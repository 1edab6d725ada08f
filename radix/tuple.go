// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

// Tuple2Codec composes two component codecs into a single codec over T,
// keyed as high<<lowBits | low so that elements order lexicographically by
// (high, low) with high as the most significant field — spec.md's own
// tuple example, `(bool, uint8)`, orders this way (section 8, item 6).
//
// high.Bits + low.Bits must not exceed 64; Sort's entry points reject a
// codec whose Bits exceeds 64 with ErrKeyWidthOverflow.
func Tuple2Codec[T any, H RadixKey, L RadixKey](high Codec[T, H], low Codec[T, L]) Codec[T, uint64] {
	lowBits := uint(low.Bits)
	return Codec[T, uint64]{
		IntoKey: func(v T) uint64 {
			return uint64(high.IntoKey(v))<<lowBits | uint64(low.IntoKey(v))
		},
		Bits: high.Bits + low.Bits,
		Validate: func(v T) error {
			if high.Validate != nil {
				if err := high.Validate(v); err != nil {
					return err
				}
			}
			if low.Validate != nil {
				return low.Validate(v)
			}
			return nil
		},
	}
}
