package fixpt

import "golang.org/x/exp/constraints"

// Lshift shifts v left by amt bits. A negative amt shifts right by -amt.
func Lshift[T constraints.Integer](v T, amt int) T {
	if amt < 0 {
		return v >> -amt
	}
	return v << amt
}

// Rshift shifts v right by amt bits. A negative amt shifts left by -amt.
// Signed values keep Go's arithmetic fill.
func Rshift[T constraints.Integer](v T, amt int) T {
	if amt < 0 {
		return v << -amt
	}
	return v >> amt
}
