//go:build !fixpt_nostr

package fixpt

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Text returns raw * 2**exp in decimal notation with six digits after the
// point, the fixed rendering of its float64 conversion: Text(5, 0) is
// "5.000000".
func Text[T constraints.Integer](raw T, exp int) string {
	return strconv.FormatFloat(Float64(raw, exp), 'f', 6, 64)
}

// AppendText appends the Text rendering of raw * 2**exp to dst and returns
// the extended buffer.
func AppendText[T constraints.Integer](dst []byte, raw T, exp int) []byte {
	return strconv.AppendFloat(dst, Float64(raw, exp), 'f', 6, 64)
}

func (x Uint8) String() string { return Text(x, 0) }
func (x Int8) String() string  { return Text(x, 0) }

func (x Uint16) String() string { return Text(x, 0) }
func (x Int16) String() string  { return Text(x, 0) }

func (x Uint32) String() string { return Text(x, 0) }
func (x Int32) String() string  { return Text(x, 0) }

func (x Uint64) String() string { return Text(x, 0) }
func (x Int64) String() string  { return Text(x, 0) }

func (x Uint8) MarshalText() ([]byte, error) { return AppendText(nil, x, 0), nil }
func (x Int8) MarshalText() ([]byte, error)  { return AppendText(nil, x, 0), nil }

func (x Uint16) MarshalText() ([]byte, error) { return AppendText(nil, x, 0), nil }
func (x Int16) MarshalText() ([]byte, error)  { return AppendText(nil, x, 0), nil }

func (x Uint32) MarshalText() ([]byte, error) { return AppendText(nil, x, 0), nil }
func (x Int32) MarshalText() ([]byte, error)  { return AppendText(nil, x, 0), nil }

func (x Uint64) MarshalText() ([]byte, error) { return AppendText(nil, x, 0), nil }
func (x Int64) MarshalText() ([]byte, error)  { return AppendText(nil, x, 0), nil }
