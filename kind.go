// Copyright 2026 The fixpt Authors. All rights reserved.

package fixpt

import (
	"errors"
	"fmt"
	"math/bits"
	"unsafe"
)

// ErrWidth is returned by ResolveKind for requests wider than the widest
// native integer.
var ErrWidth = errors.New("width out of range")

// the ladder below starts at one byte and counts on 8-bit bytes.
var _ = [1]struct{}{}[8*unsafe.Sizeof(byte(0))-8]

// Kind identifies the native integer a fixed-point type stores its value in.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindS8
	KindS16
	KindS32
	KindS64
)

var kindTypes = [...]string{
	"uint8", "uint16", "uint32", "uint64",
	"int8", "int16", "int32", "int64",
}

// ResolveKind returns the narrowest kind of at least 'width' bits, starting
// at a single byte and doubling. Requests beyond 64 bits fail with ErrWidth.
func ResolveKind(width uint, signed bool) (Kind, error) {
	w := uint(8)
	for w < width {
		if w == 64 {
			return 0, fmt.Errorf("%d bits: %w", width, ErrWidth)
		}
		w <<= 1
	}
	k := Kind(bits.Len(w) - 4)
	if signed {
		k += KindS8
	}
	return k, nil
}

// Bits returns the storage width of the kind.
func (k Kind) Bits() uint {
	return 8 << (uint(k) & 3)
}

// Signed reports whether the kind is a signed integer.
func (k Kind) Signed() bool {
	return k >= KindS8
}

// GoType returns the name of the native integer type backing the kind.
func (k Kind) GoType() string {
	return kindTypes[k]
}

func (k Kind) String() string {
	if k.Signed() {
		return fmt.Sprintf("s%d", k.Bits())
	}
	return fmt.Sprintf("u%d", k.Bits())
}
