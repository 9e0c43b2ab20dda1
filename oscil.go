// package oscil implements a wavetable oscillator: it plays a stored
// single-cycle waveform at an adjustable frequency by walking a fixed-point
// phase accumulator through the table.
package oscil

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/pfcm/oscil/fix"
	"github.com/pfcm/oscil/table"
)

// fracBits is the number of fractional bits of phase precision.
const fracBits = 16

// Oscil cycles through a wavetable to generate an audio or control signal.
// Set the pitch with one of the SetFreq variants and pull samples out with
// Next, PhMod or AtIndex.
//
// Two contexts may touch an Oscil concurrently: a production context calling
// Next/PhMod/AtIndex once per output sample, and a control context calling
// the frequency setters at its own cadence. Nothing else is safe to share.
// The phase belongs to the production context alone; the increment crosses
// between the two, so it lives in an atomic and a half-written value can
// never be observed. No operation on the production path allocates, locks,
// or returns an error.
type Oscil struct {
	tab  *table.Table
	n    uint32
	rate uint32

	// phase is a fix.U1616. Wrapping at 2^32 is one full trip through the
	// fractional index space, so overflow is the point, not a hazard.
	phase uint32
	// inc is a fix.U1616, the amount the phase moves per Next.
	inc atomic.Uint32
}

// New returns an Oscil that reads tab at the given update rate: the rate, in
// calls per second, at which the caller will invoke Next or PhMod. The table
// is borrowed, never copied or written. The increment starts at zero; call a
// frequency setter before expecting anything but a stuck phase.
func New(tab *table.Table, rate int) (*Oscil, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("update rate %d is not positive", rate)
	}
	return &Oscil{tab: tab, n: uint32(tab.Len()), rate: uint32(rate)}, nil
}

// Next advances the phase by the current increment and returns the sample at
// the new position. Call it once per output sample.
func (o *Oscil) Next() fix.S17 {
	o.phase += o.inc.Load()
	return o.tab.At(int(o.phase >> fracBits))
}

// PhMod advances the phase exactly like Next but offsets the position read by
// p, a fix.S1516 proportion of the table: the fractional part of p swings the
// read index by up to a whole table length in either direction. Only the read
// is offset; the stored phase keeps marching as if Next had been called, and
// PhMod(0) is indistinguishable from Next().
func (o *Oscil) PhMod(p fix.S1516) fix.S17 {
	o.phase += o.inc.Load()
	return o.tab.At(int((o.phase + uint32(int32(p))*o.n) >> fracBits))
}

// AtIndex returns the sample at the given table index, wrapped modulo the
// table length. The phase and frequency are not involved at all.
func (o *Oscil) AtIndex(i uint32) fix.S17 {
	return o.tab.At(int(i))
}

// Fill calls Next once per element of out. It's the natural shape for an
// audio callback that wants a block at a time.
func (o *Oscil) Fill(out []fix.S17) {
	for i := range out {
		out[i] = o.Next()
	}
}

// SetFreq sets the frequency in whole Hz. The conversion runs in 64 bit
// arithmetic, so unlike SetFreqN8 it keeps working with big tables and high
// frequencies, at some cost in speed.
func (o *Oscil) SetFreq(freq uint32) {
	o.inc.Store(uint32(o.PhaseIncFromFreq(freq)))
}

// SetFreqN8 sets the frequency from a fix.U248, the cheap route to
// fractional frequencies like 1.5Hz (a U248 of 384). The product freq*N is
// computed in 32 bits, so it overflows once freq (in Hz) times the table
// length reaches 2^24; within that range it agrees with SetFreqFloat to an
// increment or so.
func (o *Oscil) SetFreqN8(freq fix.U248) {
	o.inc.Store(((uint32(freq) * o.n) / o.rate) << (fracBits - 8))
}

// SetFreqFloat sets the frequency from a float. It has the widest usable
// range and rounds rather than truncates, and is the slowest of the three.
func (o *Oscil) SetFreqFloat(freq float32) {
	o.inc.Store(uint32(o.PhaseIncFromFreqFloat(freq)))
}

// PhaseIncFromFreq converts a frequency in whole Hz to a phase increment
// without setting it. Together with SetPhaseInc this lets a caller compute
// the increments for two frequencies once and slide between them (see Line)
// instead of redoing the conversion at every step.
func (o *Oscil) PhaseIncFromFreq(freq uint32) fix.U1616 {
	return fix.U1616((uint64(freq) * uint64(o.n) / uint64(o.rate)) << fracBits)
}

// PhaseIncFromFreqFloat is PhaseIncFromFreq for float frequencies.
func (o *Oscil) PhaseIncFromFreqFloat(freq float32) fix.U1616 {
	return fix.U1616(math.Round(float64(o.n) * float64(freq) / float64(o.rate) * (1 << fracBits)))
}

// SetPhaseInc sets the phase increment directly, as computed by
// PhaseIncFromFreq.
func (o *Oscil) SetPhaseInc(inc fix.U1616) {
	o.inc.Store(uint32(inc))
}

// PhaseInc returns the current phase increment.
func (o *Oscil) PhaseInc() fix.U1616 {
	return fix.U1616(o.inc.Load())
}

// Phase returns the phase accumulator. The integer part is the table index.
func (o *Oscil) Phase() fix.U1616 {
	return fix.U1616(o.phase)
}

// SetPhase moves the oscillator to an arbitrary position in the table. The
// phase is not synchronised, so this is only safe before production starts or
// from the production context itself.
func (o *Oscil) SetPhase(p fix.U1616) {
	o.phase = uint32(p)
}
