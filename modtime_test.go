package pwl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pwl"
	"github.com/tphakala/go-pwl/internal/testutil"
)

// triangle is the three-branch reference waveform: duration 2, peak at t=1.
func triangle() pwl.Waveform {
	return pwl.FromPairs([][2]float64{{0, 0}, {1, 5}, {2, 0}})
}

// TestModTime_PrefixBranch covers stopTime inside the waveform's span.
func TestModTime_PrefixBranch(t *testing.T) {
	out, err := triangle().ModTime(1, pwl.BoundaryConfig{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, out.Times)
	assert.Equal(t, []float64{0, 5}, out.Values)
}

// TestModTime_PrefixBranch_NoDuplicateOrigin verifies that with no delay the
// re-anchored waveform is not prepended with a second t=0 sample.
func TestModTime_PrefixBranch_NoDuplicateOrigin(t *testing.T) {
	out, err := triangle().ModTime(2, pwl.BoundaryConfig{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, out.Times, "no duplicate origin with zero delay")
	assert.Equal(t, []float64{0, 5, 0}, out.Values)
}

// TestModTime_PrefixBranch_WithDelay covers the delayed prefix case with its
// prepended origin sample.
func TestModTime_PrefixBranch_WithDelay(t *testing.T) {
	out, err := triangle().ModTime(3, pwl.BoundaryConfig{Delay: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, out.Times)
	assert.Equal(t, []float64{0, 0, 5, 0}, out.Values)
}

// TestModTime_ExtensionBranch covers stopTime beyond the waveform's span.
func TestModTime_ExtensionBranch(t *testing.T) {
	out, err := triangle().ModTime(5, pwl.BoundaryConfig{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 5}, out.Times)
	assert.Equal(t, []float64{0, 5, 0, 0}, out.Values, "trailing sample holds the last value")
}

// TestModTime_ExtensionBranch_WithDelayAndOverrides covers the extension
// case with a delay and explicit boundary values.
func TestModTime_ExtensionBranch_WithDelayAndOverrides(t *testing.T) {
	cfg := pwl.BoundaryConfig{
		Delay:      1,
		DelayValue: pwl.Float(9),
		StopValue:  pwl.Float(7),
	}
	out, err := triangle().ModTime(5, cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 5}, out.Times)
	assert.Equal(t, []float64{9, 0, 5, 0, 7}, out.Values)
}

// TestModTime_DegenerateBranch covers stopTime at or before the delay: a
// two-sample flat line at the delay level.
func TestModTime_DegenerateBranch(t *testing.T) {
	out, err := triangle().ModTime(0, pwl.BoundaryConfig{Delay: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, out.Times)
	assert.Equal(t, []float64{0, 0}, out.Values)

	out, err = triangle().ModTime(0.5, pwl.BoundaryConfig{Delay: 1, DelayValue: pwl.Float(3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, out.Times)
	assert.Equal(t, []float64{3, 3}, out.Values)
}

// TestModTime_BranchBoundaries pins the exact branch edges at
// stopTime == Delay and stopTime == Delay + Duration.
func TestModTime_BranchBoundaries(t *testing.T) {
	// stopTime == Delay: degenerate flat line.
	out, err := triangle().ModTime(1, pwl.BoundaryConfig{Delay: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, out.Times)
	assert.Equal(t, []float64{0, 0}, out.Values)

	// stopTime == Delay + Duration: prefix branch keeps the whole
	// waveform without a trailing stop sample.
	out, err = triangle().ModTime(3, pwl.BoundaryConfig{Delay: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, out.Times)
	assert.Equal(t, []float64{0, 0, 5, 0}, out.Values)
}

// TestModTime_ReanchorIdempotence verifies that re-timing onto the original
// duration with no delay reproduces the values at the original offsets.
func TestModTime_ReanchorIdempotence(t *testing.T) {
	w := pwl.FromPairs([][2]float64{{1, 2}, {2, 3}, {3.5, 4}})
	out, err := w.ModTime(w.Duration(), pwl.BoundaryConfig{})
	require.NoError(t, err)

	want := pwl.FromPairs([][2]float64{{0, 2}, {1, 3}, {2.5, 4}})
	testutil.AssertWaveformInDelta(t, want, out, testutil.DefaultTolerance)
	testutil.AssertBeginsAtZero(t, out)
}

// TestModTime_Errors verifies the empty-waveform rejection and that the
// input is never mutated.
func TestModTime_Errors(t *testing.T) {
	var empty pwl.Waveform
	_, err := empty.ModTime(1, pwl.BoundaryConfig{})
	assert.ErrorIs(t, err, pwl.ErrEmptyWaveform)

	w := pwl.FromPairs([][2]float64{{1, 2}, {3, 4}})
	before := testutil.Snapshot(w)
	_, err = w.ModTime(10, pwl.BoundaryConfig{Delay: 2})
	require.NoError(t, err)
	testutil.AssertUnchanged(t, before, w)
}
