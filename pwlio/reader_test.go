package pwlio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_Basic verifies a bare two-column file.
func TestRead_Basic(t *testing.T) {
	in := "0 1\n1e-9 2\n2e-9 0\n"
	w, err := Read(strings.NewReader(in), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1e-9, 2e-9}, w.Times)
	assert.Equal(t, []float64{1, 2, 0}, w.Values)
}

// TestRead_SkipAndIgnore verifies header and trailer lines are dropped.
func TestRead_SkipAndIgnore(t *testing.T) {
	deck := "# s A\n0 0\n1 5\n2 0\n.end"
	w, err := Read(strings.NewReader(deck), ReadOptions{
		SkipStartLines: 1,
		IgnoreEndLines: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, w.Times)
	assert.Equal(t, []float64{0, 5, 0}, w.Values)
}

// TestRead_ContinuationPrefix verifies the prefix strip and surrounding
// whitespace handling.
func TestRead_ContinuationPrefix(t *testing.T) {
	in := "1e-9 0.5\n+ 2e-9 0.75\n+3e-9 1.0\n"
	w, err := Read(strings.NewReader(in), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []float64{1e-9, 2e-9, 3e-9}, w.Times)
	assert.Equal(t, []float64{0.5, 0.75, 1.0}, w.Values)
}

// TestRead_UnitSuffixes verifies suffix parsing on both columns.
func TestRead_UnitSuffixes(t *testing.T) {
	in := "0 0\n5u 2m\n10u 0\n"
	w, err := Read(strings.NewReader(in), ReadOptions{ParseUnitSuffix: true})
	require.NoError(t, err)
	assert.InDelta(t, 5e-6, w.Times[1], 1e-18)
	assert.InDelta(t, 2e-3, w.Values[1], 1e-15)
	assert.InDelta(t, 10e-6, w.Times[2], 1e-18)
}

// TestRead_ColumnScales verifies the caller-supplied unit-scale vector.
func TestRead_ColumnScales(t *testing.T) {
	in := "1 2\n2 4\n"
	w, err := Read(strings.NewReader(in), ReadOptions{
		TimeScale:  1e-9,
		ValueScale: 1e-3,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1e-9, 2e-9}, w.Times)
	assert.Equal(t, []float64{2e-3, 4e-3}, w.Values)
}

// TestRead_BlankLinesSkipped verifies interior blank lines are tolerated.
func TestRead_BlankLinesSkipped(t *testing.T) {
	in := "0 1\n\n1 2\n"
	w, err := Read(strings.NewReader(in), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
}

// TestRead_MalformedLine verifies the shape error carries the line number.
func TestRead_MalformedLine(t *testing.T) {
	in := "0 1\n1 2 3\n"
	_, err := Read(strings.NewReader(in), ReadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

// TestRead_UnknownSuffix verifies an unknown scale letter surfaces as a
// parse error with the offending token.
func TestRead_UnknownSuffix(t *testing.T) {
	in := "3x 1\n"
	_, err := Read(strings.NewReader(in), ReadOptions{ParseUnitSuffix: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScale)
	assert.Contains(t, err.Error(), "3x")
}

// TestRead_BadFloatWithoutSuffixParsing verifies suffixed tokens fail when
// suffix parsing is off.
func TestRead_BadFloatWithoutSuffixParsing(t *testing.T) {
	in := "5u 1\n"
	_, err := Read(strings.NewReader(in), ReadOptions{})
	require.Error(t, err)
}

// TestRead_NotEnoughLines verifies over-aggressive skip/ignore counts.
func TestRead_NotEnoughLines(t *testing.T) {
	in := "0 1\n"
	_, err := Read(strings.NewReader(in), ReadOptions{SkipStartLines: 1, IgnoreEndLines: 1})
	assert.ErrorIs(t, err, ErrNotEnoughLines)
}
