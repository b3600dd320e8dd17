package pwl

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Catenate appends b after a in time. b's samples are shifted so that its
// first sample lands at a's last time plus the gap; *gap when given, else
// the time delta between b's first two samples. Both operands are copied,
// so neither caller-held waveform is adjusted in place.
//
// If b is empty the result is a copy of a; if a is empty the result is a
// copy of b with its times unchanged.
func Catenate(a, b Waveform, gap *float64) (Waveform, error) {
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if a.IsEmpty() {
		return b.Clone(), nil
	}

	var g float64
	if gap != nil {
		g = *gap
	} else {
		if b.Len() < 2 {
			return Waveform{}, fmt.Errorf("pwl.Catenate: %w (need 2 samples in the second operand to derive the gap, have %d)",
				ErrTooFewSamples, b.Len())
		}
		g = b.Times[1] - b.Times[0]
	}

	out := Waveform{
		Times:  make([]float64, 0, a.Len()+b.Len()),
		Values: make([]float64, 0, a.Len()+b.Len()),
	}
	out.Times = append(out.Times, a.Times...)
	out.Values = append(out.Values, a.Values...)

	shifted := make([]float64, b.Len())
	copy(shifted, b.Times)
	floats.AddConst(a.EndTime()+g, shifted)
	out.Times = append(out.Times, shifted...)
	out.Values = append(out.Values, b.Values...)
	return out, nil
}
