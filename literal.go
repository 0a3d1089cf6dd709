// Copyright 2026 The fixpt Authors. All rights reserved.

package fixpt

import (
	mu "github.com/fixpt/fixpt/internal/mathutil"
)

// FromUint64 returns n as a fixed-point value with a zero exponent, stored
// in the narrowest unsigned kind that holds all significant bits of n.
func FromUint64(n uint64) Value {
	// a 64-bit literal always resolves, the ladder ends at its width.
	k, _ := ResolveKind(uint(mu.BinaryDigits(n)), false)
	switch k {
	case KindU8:
		return Uint8(n)
	case KindU16:
		return Uint16(n)
	case KindU32:
		return Uint32(n)
	default:
		return Uint64(n)
	}
}

// FromInt64 returns n as a fixed-point value with a zero exponent. A
// negative n picks the narrowest signed kind that represents it exactly,
// anything else is stored unsigned as in FromUint64.
func FromInt64(n int64) Value {
	if n >= 0 {
		return FromUint64(uint64(n))
	}
	k, _ := ResolveKind(uint(mu.SignedBinaryDigits(n)), true)
	switch k {
	case KindS8:
		return Int8(n)
	case KindS16:
		return Int16(n)
	case KindS32:
		return Int32(n)
	default:
		return Int64(n)
	}
}
