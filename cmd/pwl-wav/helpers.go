package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// uniformGrid returns sample times 0, 1/rate, 2/rate, ... covering
// [0, duration] inclusive of the final point when it lands on the grid.
func uniformGrid(duration float64, rate int) []float64 {
	n := int(duration*float64(rate)) + 1
	grid := make([]float64, n)
	step := 1.0 / float64(rate)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}

// toPCM16 converts float samples to 16-bit PCM integers. With normalize set
// the peak amplitude maps to full scale before gain is applied; samples are
// clamped to [-1, 1] after gain either way.
func toPCM16(values []float64, gain float64, normalize bool) []int {
	scale := gain
	if normalize && len(values) > 0 {
		peak := math.Max(math.Abs(floats.Max(values)), math.Abs(floats.Min(values)))
		if peak > 0 {
			scale = gain / peak
		}
	}

	data := make([]int, len(values))
	for i, v := range values {
		s := v * scale
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * maxInt16Value)
	}
	return data
}
