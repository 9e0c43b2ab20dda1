package oscil

import "github.com/pfcm/oscil/fix"

// Line walks a phase increment from one value to another in a fixed number of
// equal steps, for glides: compute the two endpoint increments with
// PhaseIncFromFreq, then feed Next into SetPhaseInc at whatever cadence the
// control context runs.
type Line struct {
	cur, to fix.U1616
	step    int64
	n       int
}

// NewLine returns a Line from one increment to another over the given number
// of steps. Fewer than one step means one.
func NewLine(from, to fix.U1616, steps int) *Line {
	if steps < 1 {
		steps = 1
	}
	return &Line{
		cur:  from,
		to:   to,
		step: (int64(to) - int64(from)) / int64(steps),
		n:    steps,
	}
}

// Next returns the next increment along the line. The last step lands on the
// target exactly, swallowing the truncation from the step division, and once
// there Next keeps returning it.
func (l *Line) Next() fix.U1616 {
	if l.n <= 0 {
		return l.to
	}
	l.n--
	if l.n == 0 {
		l.cur = l.to
	} else {
		l.cur = fix.U1616(int64(l.cur) + l.step)
	}
	return l.cur
}

// Done reports whether the line has reached its target.
func (l *Line) Done() bool {
	return l.n <= 0
}
