// Copyright 2026 The fixpt Authors. All rights reserved.

// Package fixpt implements binary fixed-point numbers, where a value is an
// integer scaled by a constant power of two. A type fixes its storage width,
// signedness and binary exponent when it is declared; at run time a value is
// nothing but the stored integer.
package fixpt

import (
	"math"

	"golang.org/x/exp/constraints"
)

//go:generate go run mkfixpt.go Int1_15=s16e-15 Uint20_12=u20e-12 Int26_6=s26e-6 Int52_12=s52e-12

// Value is the interface shared by all fixed-point types in this package:
// the stored integer observed through its floating-point conversions.
type Value interface {
	Float32() float32
	Float64() float64
}

// Float64 returns raw * 2**exp as the nearest float64.
func Float64[T constraints.Integer](raw T, exp int) float64 {
	return math.Ldexp(float64(raw), exp)
}

// Float32 returns raw * 2**exp as the nearest float32. The stored integer
// is narrowed to float32 before scaling, so the result rounds once from
// single precision.
func Float32[T constraints.Integer](raw T, exp int) float32 {
	return float32(math.Ldexp(float64(float32(raw)), exp))
}
