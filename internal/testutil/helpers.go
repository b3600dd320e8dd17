// Package testutil provides reusable test helper functions for waveform tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-pwl"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	LooseTolerance   = 1e-9
)

// AssertTimesNonDecreasing verifies that a waveform's time column never
// steps backwards.
func AssertTimesNonDecreasing(t *testing.T, w pwl.Waveform, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(w.Times); i++ {
		if w.Times[i] < w.Times[i-1] {
			return assert.Fail(t, "time column not non-decreasing",
				"Times[%d]=%v < Times[%d]=%v", i, w.Times[i], i-1, w.Times[i-1])
		}
	}
	return true
}

// AssertBeginsAtZero verifies that a non-empty waveform starts at time 0.
func AssertBeginsAtZero(t *testing.T, w pwl.Waveform, msgAndArgs ...any) bool {
	t.Helper()
	if w.IsEmpty() {
		return assert.Fail(t, "waveform is empty", msgAndArgs...)
	}
	return assert.InDelta(t, 0, w.Times[0], DefaultTolerance, msgAndArgs...)
}

// AssertWaveformInDelta verifies that two waveforms match sample by sample
// within the tolerance.
func AssertWaveformInDelta(t *testing.T, want, got pwl.Waveform, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, want.Len(), got.Len(), "sample counts differ") {
		return false
	}
	for i := range want.Times {
		if !assert.InDelta(t, want.Times[i], got.Times[i], tolerance,
			"Times[%d]: want %v, got %v", i, want.Times[i], got.Times[i]) {
			return false
		}
		if !assert.InDelta(t, want.Values[i], got.Values[i], tolerance,
			"Values[%d]: want %v, got %v", i, want.Values[i], got.Values[i]) {
			return false
		}
	}
	return true
}

// Snapshot deep-copies a waveform's columns so a later comparison can prove
// an operation did not touch its input.
func Snapshot(w pwl.Waveform) pwl.Waveform {
	return w.Clone()
}

// AssertUnchanged verifies that a waveform still matches a snapshot taken
// before an operation ran.
func AssertUnchanged(t *testing.T, before, after pwl.Waveform, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, before.Times, after.Times, "input time column was mutated") {
		return false
	}
	return assert.Equal(t, before.Values, after.Values, "input value column was mutated")
}
