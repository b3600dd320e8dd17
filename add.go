package pwl

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add sums two waveforms on a's time grid: the result keeps a's times and
// adds to each of a's values the linear interpolation of b at that time.
// Query times outside b's range contribute 0 rather than b's edge values,
// so a shorter b only perturbs the overlap.
func Add(a, b Waveform) (Waveform, error) {
	resampled, err := b.Interpolate(a.Times, Float(0), Float(0))
	if err != nil {
		return Waveform{}, fmt.Errorf("pwl.Add: %w", err)
	}
	out := a.Clone()
	floats.Add(out.Values, resampled.Values)
	return out, nil
}
