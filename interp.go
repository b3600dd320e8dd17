package pwl

import (
	"fmt"
	"sort"
)

// Interpolate resamples the waveform at the given query times using
// piecewise-linear interpolation between its samples. The query times need
// not be sorted or aligned to the waveform's grid; each is evaluated
// independently and echoed into the output's time column.
//
// left and right override the output value for query times below and above
// the waveform's time range; nil clamps to the first and last sample value.
func (w Waveform) Interpolate(times []float64, left, right *float64) (Waveform, error) {
	if w.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.Interpolate: %w", ErrEmptyWaveform)
	}

	out := Waveform{
		Times:  make([]float64, len(times)),
		Values: make([]float64, len(times)),
	}
	copy(out.Times, times)

	last := w.Len() - 1
	for i, t := range times {
		switch {
		case t < w.Times[0]:
			if left != nil {
				out.Values[i] = *left
			} else {
				out.Values[i] = w.Values[0]
			}
		case t > w.Times[last]:
			if right != nil {
				out.Values[i] = *right
			} else {
				out.Values[i] = w.Values[last]
			}
		default:
			out.Values[i] = w.valueAt(t)
		}
	}
	return out, nil
}

// valueAt evaluates the piecewise-linear value at t, which must lie within
// the waveform's time range.
func (w Waveform) valueAt(t float64) float64 {
	// First index with Times[i] >= t.
	i := sort.SearchFloat64s(w.Times, t)
	if i < w.Len() && w.Times[i] == t {
		return w.Values[i]
	}
	t0, t1 := w.Times[i-1], w.Times[i]
	v0, v1 := w.Values[i-1], w.Values[i]
	frac := (t - t0) / (t1 - t0)
	return v0 + frac*(v1-v0)
}
