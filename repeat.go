package pwl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RepeatTimes returns the waveform re-anchored to start at 0, followed by
// count further copies. Copy i (1-based) is shifted forward by
// (step + endTime) * i, where endTime is the re-anchored last time and step
// is *gap when given, else the time delta between the first two samples.
// count == 0 returns just the re-anchored original.
func (w Waveform) RepeatTimes(count int, gap *float64) (Waveform, error) {
	if w.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.RepeatTimes: %w", ErrEmptyWaveform)
	}
	if count < 0 {
		return Waveform{}, fmt.Errorf("pwl.RepeatTimes: %w (got %d)", ErrNegativeCount, count)
	}

	var step float64
	if gap != nil {
		step = *gap
	} else {
		if w.Len() < 2 {
			return Waveform{}, fmt.Errorf("pwl.RepeatTimes: %w (need 2 samples to derive the gap, have %d)",
				ErrTooFewSamples, w.Len())
		}
		step = w.Times[1] - w.Times[0]
	}

	base := w.rebased()
	endTime := base.EndTime()
	n := base.Len()

	out := Waveform{
		Times:  make([]float64, 0, n*(count+1)),
		Values: make([]float64, 0, n*(count+1)),
	}
	out.Times = append(out.Times, base.Times...)
	out.Values = append(out.Values, base.Values...)
	for i := 1; i <= count; i++ {
		offset := (step + endTime) * float64(i)
		tile := make([]float64, n)
		copy(tile, base.Times)
		floats.AddConst(offset, tile)
		out.Times = append(out.Times, tile...)
		out.Values = append(out.Values, base.Values...)
	}
	return out, nil
}

// RepeatTillStopTime tiles the waveform until it covers [0, stopTime] and
// truncates the result to that window. The repeat count is
// ceil(stopTime / Duration), so the waveform's duration must be positive.
// The gap between tiles follows the RepeatTimes rules.
func (w Waveform) RepeatTillStopTime(stopTime float64, gap *float64) (Waveform, error) {
	if w.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.RepeatTillStopTime: %w", ErrEmptyWaveform)
	}
	duration := w.Duration()
	if duration <= 0 {
		return Waveform{}, fmt.Errorf("pwl.RepeatTillStopTime: %w (duration %v)",
			ErrNonPositiveDuration, duration)
	}

	count := int(math.Ceil(stopTime / duration))
	if count < 0 {
		count = 0
	}
	repeated, err := w.RepeatTimes(count, gap)
	if err != nil {
		return Waveform{}, err
	}
	center, _, _ := repeated.Cut(0, stopTime)
	return center, nil
}
