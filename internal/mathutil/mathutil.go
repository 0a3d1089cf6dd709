package mathutil

import (
	"math/bits"
	"unsafe"
)

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// SignedBinaryDigits returns the number of bits needed to store 'value'
// in two's complement, including the sign bit.
func SignedBinaryDigits(value int64) int {
	if value >= 0 {
		return BinaryDigits(uint64(value)) + 1
	}
	return BinaryDigits(Magnitude64(value)-1) + 1
}

// Magnitude64 returns the absolute value of 'value' as a uint64.
// Unlike a plain negation it is exact for math.MinInt64.
func Magnitude64(value int64) uint64 {
	mask := value >> (unsafe.Sizeof(int64(0))*8 - 1)
	return uint64((value + mask) ^ mask)
}
