package pwl

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Waveform is an ordered sequence of (time, value) samples describing a
// piecewise-linear signal. Times and Values are parallel columns of equal
// length; Times is assumed non-decreasing by every operation (well-formed
// input is the caller's responsibility, the library does not enforce it).
//
// A zero-length waveform is a valid value, not an error, wherever an
// operation documents it (partition remainders, catenation operands).
type Waveform struct {
	// Times holds the sample times in seconds (or any consistent unit).
	Times []float64

	// Values holds the sample amplitudes (current, voltage, or other).
	Values []float64
}

// New builds a waveform from time and value columns. The columns must have
// equal length; both are copied, so the caller keeps ownership of its slices.
func New(times, values []float64) (Waveform, error) {
	if len(times) != len(values) {
		return Waveform{}, fmt.Errorf("pwl.New: %w (%d times, %d values)",
			ErrColumnMismatch, len(times), len(values))
	}
	w := Waveform{
		Times:  make([]float64, len(times)),
		Values: make([]float64, len(values)),
	}
	copy(w.Times, times)
	copy(w.Values, values)
	return w, nil
}

// FromPairs builds a waveform from (time, value) pairs.
func FromPairs(pairs [][2]float64) Waveform {
	w := Waveform{
		Times:  make([]float64, len(pairs)),
		Values: make([]float64, len(pairs)),
	}
	for i, p := range pairs {
		w.Times[i] = p[0]
		w.Values[i] = p[1]
	}
	return w
}

// Float returns a pointer to v, for filling optional *float64 fields inline.
func Float(v float64) *float64 { return &v }

// Len returns the number of samples.
func (w Waveform) Len() int { return len(w.Times) }

// IsEmpty reports whether the waveform has no samples.
func (w Waveform) IsEmpty() bool { return len(w.Times) == 0 }

// BeginTime returns the first sample time, or 0 for an empty waveform.
func (w Waveform) BeginTime() float64 {
	if w.IsEmpty() {
		return 0
	}
	return w.Times[0]
}

// EndTime returns the last sample time, or 0 for an empty waveform.
func (w Waveform) EndTime() float64 {
	if w.IsEmpty() {
		return 0
	}
	return w.Times[len(w.Times)-1]
}

// Duration returns EndTime minus BeginTime.
func (w Waveform) Duration() float64 { return w.EndTime() - w.BeginTime() }

// Clone returns a deep copy sharing no memory with w.
func (w Waveform) Clone() Waveform {
	out := Waveform{
		Times:  make([]float64, len(w.Times)),
		Values: make([]float64, len(w.Values)),
	}
	copy(out.Times, w.Times)
	copy(out.Values, w.Values)
	return out
}

// rebased returns a copy whose time column is shifted to begin at 0.
func (w Waveform) rebased() Waveform {
	out := w.Clone()
	if !out.IsEmpty() && out.Times[0] != 0 {
		floats.AddConst(-out.Times[0], out.Times)
	}
	return out
}
