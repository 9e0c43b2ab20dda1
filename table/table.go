// package table provides immutable wavetables: single cycles of a waveform
// for oscillators to read.
package table

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/pfcm/oscil/fix"
)

// Table is an ordered sequence of fix.S17 samples describing one period of a
// waveform. Its length is always a power of two so reads can wrap with a
// single mask, and it is never written after construction: oscillators hold a
// pointer and only ever read.
type Table struct {
	samples []fix.S17
	mask    uint32
}

// New copies samples into a fresh Table. The length must be a power of two,
// which is the only place that gets checked; everything downstream relies on
// it for masking.
func New(samples []fix.S17) (*Table, error) {
	n := len(samples)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("table length %d is not a power of two", n)
	}
	cp := make([]fix.S17, n)
	copy(cp, samples)
	return &Table{samples: cp, mask: uint32(n - 1)}, nil
}

// At returns the sample at index i. The index wraps modulo the table length,
// so any i is fine.
func (t *Table) At(i int) fix.S17 {
	return t.samples[uint32(i)&t.mask]
}

// Len returns the number of samples in one cycle.
func (t *Table) Len() int { return len(t.samples) }

// Mask returns Len()-1, the mask that wraps an integer index into the table.
func (t *Table) Mask() uint32 { return t.mask }

// Sine returns a Table holding one cycle of a sine wave.
func Sine(n int) (*Table, error) {
	samples := make([]fix.S17, max(n, 0))
	for i := range samples {
		f := math.Sin(2 * math.Pi * float64(i) / float64(n))
		samples[i] = fix.S17FromFloat(f)
	}
	return New(samples)
}

// Saw returns a Table holding a rising ramp from -1 to (nearly) 1.
func Saw(n int) (*Table, error) {
	samples := make([]fix.S17, max(n, 0))
	for i := range samples {
		samples[i] = fix.S17FromFloat(2*float64(i)/float64(n) - 1)
	}
	return New(samples)
}

// Triangle returns a Table holding a triangle wave, starting at -1, peaking
// halfway through the cycle.
func Triangle(n int) (*Table, error) {
	samples := make([]fix.S17, max(n, 0))
	for i := range samples {
		ph := float64(i) / float64(n)
		samples[i] = fix.S17FromFloat(1 - 4*math.Abs(ph-0.5))
	}
	return New(samples)
}

// Square returns a Table spending the first half of the cycle at high and the
// second half at low.
func Square(n int, high, low fix.S17) (*Table, error) {
	samples := make([]fix.S17, max(n, 0))
	for i := range samples {
		if i < n/2 {
			samples[i] = high
		} else {
			samples[i] = low
		}
	}
	return New(samples)
}

// FromHex decodes a table from a string of hex digit pairs, each pair one
// signed 8 bit sample. It's a convenient interchange format for tables
// authored elsewhere.
func FromHex(s string) (*Table, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	samples := make([]fix.S17, len(data))
	for i, b := range data {
		samples[i] = fix.S17(b)
	}
	return New(samples)
}
