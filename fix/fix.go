// package fix provides the fixed-point number formats the oscillator speaks.
package fix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// S17 is a signed (two's complement) 8 bit number with 1 integer bit and 7
// fractional bits capable of representing (roughly) the range -1 to 1. It is
// the wavetable sample format.
type S17 int8

const (
	// MaxS17 is the highest positive S17: 0.9921875.
	MaxS17 S17 = 0x7F
	// MinS17 is the lowest negative S17: -1.
	MinS17 S17 = -0x80
)

func (s S17) String() string {
	return fmt.Sprintf("%.7f", S17ToFloat[float64](s))
}

// SAdd is a saturating +, clipping to the minimum or maximum value.
func (a S17) SAdd(b S17) S17 {
	if a > 0 && b > 0 && a > MaxS17-b {
		return MaxS17
	}
	if a < 0 && b < 0 && a < MinS17+b {
		return MinS17
	}
	return a + b
}

// SMul multiplies an S17 with another, saturating at the maximum or minimum
// if it overflows.
func (a S17) SMul(b S17) S17 {
	return S17((int16(a) * int16(b)) >> 7)
}

func S17ToFloat[T constraints.Float](s S17) T {
	var scale = 1.0 / T(1<<7)
	return T(s) * scale
}

// S17FromFloat converts a float into an S17, clamping to the maximum or
// minimum values.
func S17FromFloat[T constraints.Float](f T) S17 {
	if f < S17ToFloat[T](MinS17) {
		return MinS17
	}
	if f > S17ToFloat[T](MaxS17) {
		return MaxS17
	}
	return S17(f * T(1<<7))
}

// U1616 is an unsigned fixed point number with 16 integer bits and 16
// fractional bits. It is the phase format: the integer part indexes a
// wavetable, the fractional part tracks sub-sample position. Arithmetic on it
// wraps modulo 2^32, which for a phase is periodicity rather than overflow.
type U1616 uint32

const (
	// MaxU1616 is the highest U1616, just under 65536.
	MaxU1616 U1616 = 0xFFFFFFFF
	// MinU1616 is the lowest U1616: 0.
	MinU1616 U1616 = 0
)

func (u U1616) String() string {
	return fmt.Sprintf("%.5f", U1616ToFloat[float64](u))
}

func U1616ToFloat[T constraints.Float](u U1616) T {
	var scale = 1.0 / T(1<<16)
	return T(u) * scale
}

// U1616FromFloat converts a float into a U1616, clamping to the maximum or
// minimum values.
func U1616FromFloat[T constraints.Float](f T) U1616 {
	if f < 0 {
		return MinU1616
	}
	if f > U1616ToFloat[T](MaxU1616) {
		return MaxU1616
	}
	return U1616(f * T(1<<16))
}

// U248 is an unsigned fixed point number with 24 integer bits and 8
// fractional bits. It is the cheap fractional frequency format: a U248 of
// 1.5Hz is 384 (1.5 * 256).
type U248 uint32

const (
	// MaxU248 is the highest U248, just under 2^24.
	MaxU248 U248 = 0xFFFFFFFF
	// MinU248 is the lowest U248: 0.
	MinU248 U248 = 0
)

func (u U248) String() string {
	return fmt.Sprintf("%.3f", U248ToFloat[float64](u))
}

func U248ToFloat[T constraints.Float](u U248) T {
	var scale = 1.0 / T(1<<8)
	return T(u) * scale
}

// U248FromFloat converts a float into a U248, clamping to the maximum or
// minimum values.
func U248FromFloat[T constraints.Float](f T) U248 {
	if f < 0 {
		return MinU248
	}
	if f > U248ToFloat[T](MaxU248) {
		return MaxU248
	}
	return U248(f * T(1<<8))
}

// S1516 is a signed (two's complement) fixed point number with 15 integer
// bits and 16 fractional bits. Phase modulation takes one as a proportion of
// a whole table length, so the fractional part alone sweeps the read position
// by -1 to 1 table lengths.
type S1516 int32

const (
	// MaxS1516 is the highest S1516, just under 32768.
	MaxS1516 S1516 = 0x7FFFFFFF
	// MinS1516 is the lowest S1516: -32768.
	MinS1516 S1516 = -0x80000000
)

func (s S1516) String() string {
	return fmt.Sprintf("%.5f", S1516ToFloat[float64](s))
}

func S1516ToFloat[T constraints.Float](s S1516) T {
	var scale = 1.0 / T(1<<16)
	return T(s) * scale
}

// S1516FromFloat converts a float into an S1516, clamping to the maximum or
// minimum values.
func S1516FromFloat[T constraints.Float](f T) S1516 {
	if f < S1516ToFloat[T](MinS1516) {
		return MinS1516
	}
	if f > S1516ToFloat[T](MaxS1516) {
		return MaxS1516
	}
	return S1516(f * T(1<<16))
}
