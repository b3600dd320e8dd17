package pwl

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BoundaryConfig controls how ModTime dresses the edges of the output
// window. The zero value applies no delay and derives both boundary values
// from the waveform itself.
type BoundaryConfig struct {
	// Delay shifts the re-anchored waveform forward in time.
	Delay float64

	// DelayValue is the level held on [0, Delay]. Nil means the
	// waveform's first value.
	DelayValue *float64

	// StopValue is the level appended at the stop time when the window
	// outlasts the waveform. Nil means the waveform's last value.
	StopValue *float64
}

// ModTime re-anchors the waveform to start at time 0, shifts it by
// cfg.Delay, and fits it onto the window [0, stopTime]:
//
//   - stopTime <= Delay: the output is a flat line, exactly two samples at
//     (0, beginValue) and (stopTime, beginValue).
//   - stopTime <= Delay + Duration: the output is the prefix of the shifted
//     waveform with t <= stopTime; when Delay > 0 a leading (0, beginValue)
//     sample is prepended. With Delay == 0 the shifted waveform already
//     starts at 0, so nothing is prepended and no duplicate origin appears.
//   - otherwise: the whole shifted waveform, with the same Delay > 0
//     prepend rule, plus a trailing (stopTime, endValue) sample.
//
// beginValue is cfg.DelayValue (or the original first value) and endValue
// is cfg.StopValue (or the original last value).
func (w Waveform) ModTime(stopTime float64, cfg BoundaryConfig) (Waveform, error) {
	if w.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.ModTime: %w", ErrEmptyWaveform)
	}

	beginValue := w.Values[0]
	if cfg.DelayValue != nil {
		beginValue = *cfg.DelayValue
	}
	endValue := w.Values[len(w.Values)-1]
	if cfg.StopValue != nil {
		endValue = *cfg.StopValue
	}

	if stopTime <= cfg.Delay {
		// The window closes before the waveform starts: flat line at
		// the delay level.
		return Waveform{
			Times:  []float64{0, stopTime},
			Values: []float64{beginValue, beginValue},
		}, nil
	}

	shifted := w.rebased()
	if cfg.Delay != 0 {
		floats.AddConst(cfg.Delay, shifted.Times)
	}

	var out Waveform
	if stopTime <= cfg.Delay+w.Duration() {
		n := 0
		for n < shifted.Len() && shifted.Times[n] <= stopTime {
			n++
		}
		out = Waveform{Times: shifted.Times[:n], Values: shifted.Values[:n]}
	} else {
		out = shifted
		out.Times = append(out.Times, stopTime)
		out.Values = append(out.Values, endValue)
	}

	if cfg.Delay > 0 {
		out.Times = append([]float64{0}, out.Times...)
		out.Values = append([]float64{beginValue}, out.Values...)
	}
	return out, nil
}
