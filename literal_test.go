// Copyright 2026 The fixpt Authors. All rights reserved.

package fixpt

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUint64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n    uint64
		want Value
	}{
		{0, Uint8(0)},
		{1, Uint8(1)},
		{5, Uint8(5)},
		{255, Uint8(255)},
		{256, Uint16(256)},
		{65535, Uint16(65535)},
		{65536, Uint32(65536)},
		{1<<32 - 1, Uint32(math.MaxUint32)},
		{1 << 32, Uint64(1 << 32)},
		{math.MaxUint64, Uint64(math.MaxUint64)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromUint64(test.n)
			a.Equal(test.want, v)
			a.Equal(float64(test.n), v.Float64())
		})
	}
}

func TestFromInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n    int64
		want Value
	}{
		{0, Uint8(0)},
		{5, Uint8(5)},
		{127, Uint8(127)},
		{128, Uint8(128)},
		{255, Uint8(255)},
		{256, Uint16(256)},
		{math.MaxInt64, Uint64(math.MaxInt64)},
		{-1, Int8(-1)},
		{-5, Int8(-5)},
		{-128, Int8(-128)},
		{-129, Int16(-129)},
		{-32768, Int16(-32768)},
		{-32769, Int32(-32769)},
		{math.MinInt32, Int32(math.MinInt32)},
		{math.MinInt32 - 1, Int64(math.MinInt32 - 1)},
		{math.MinInt64, Int64(math.MinInt64)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromInt64(test.n)
			a.Equal(test.want, v)
			a.Equal(float64(test.n), v.Float64())
		})
	}
}

func TestFromInt64Exact(t *testing.T) {
	a := assert.New(t)
	for b := 0; b < 63; b++ {
		for _, n := range []int64{1<<b - 1, 1 << b, -(1 << b), -(1 << b) - 1} {
			v := FromInt64(n)
			a.Equal(float64(n), v.Float64())
		}
	}
}
