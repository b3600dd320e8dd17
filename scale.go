package pwl

import "github.com/tphakala/simd/f64"

// ScaleAmp returns a copy of the waveform with every value multiplied by
// scalar. The time column is unchanged.
func (w Waveform) ScaleAmp(scalar float64) Waveform {
	out := Waveform{
		Times:  make([]float64, len(w.Times)),
		Values: make([]float64, len(w.Values)),
	}
	copy(out.Times, w.Times)
	f64.Scale(out.Values, w.Values, scalar)
	return out
}
