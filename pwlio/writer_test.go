package pwlio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pwl"
)

// TestWrite_BareTable verifies the default layout: headline, first sample
// without a continuation prefix, remaining samples prefixed.
func TestWrite_BareTable(t *testing.T) {
	wf := pwl.FromPairs([][2]float64{{0, 1}, {1e-9, 2}})
	var sb strings.Builder
	require.NoError(t, Write(&sb, wf, WriteOptions{}))

	want := "# s A\n" +
		"0.000000000e+00 1.000000000e+00\n" +
		"+ 1.000000000e-09 2.000000000e+00"
	assert.Equal(t, want, sb.String())
}

// TestWrite_WithDefinition verifies the PWL definition line and closing
// token wrap every sample in continuation form.
func TestWrite_WithDefinition(t *testing.T) {
	wf := pwl.FromPairs([][2]float64{{0, 1}, {1e-9, 2}})
	var sb strings.Builder
	err := Write(&sb, wf, WriteOptions{
		Headline: "* stimulus",
		PWLDef:   "Vin in 0 PWL(",
		Footline: ")",
	})
	require.NoError(t, err)

	want := "* stimulus\n" +
		"Vin in 0 PWL(\n" +
		"+ 0.000000000e+00 1.000000000e+00\n" +
		"+ 1.000000000e-09 2.000000000e+00)"
	assert.Equal(t, want, sb.String())
}

// TestWrite_CustomPrefix verifies an alternate continuation symbol.
func TestWrite_CustomPrefix(t *testing.T) {
	wf := pwl.FromPairs([][2]float64{{0, 0}, {1, 1}})
	var sb strings.Builder
	err := Write(&sb, wf, WriteOptions{PWLDef: "PWL(", ContinuationPrefix: ">"})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "\n> 0.000000000e+00")
}

// TestWriteRead_RoundTrip verifies a written waveform reads back identically
// through the matching options.
func TestWriteRead_RoundTrip(t *testing.T) {
	wf := pwl.FromPairs([][2]float64{{0, 0}, {0.5, 2}, {1, 0.25}, {2.5, -1}})
	var sb strings.Builder
	require.NoError(t, Write(&sb, wf, WriteOptions{}))

	back, err := Read(strings.NewReader(sb.String()), ReadOptions{SkipStartLines: 1})
	require.NoError(t, err)
	assert.Equal(t, wf.Times, back.Times)
	assert.Equal(t, wf.Values, back.Values)
}

// TestWriteFileReadFile_RoundTrip exercises the file-backed helpers.
func TestWriteFileReadFile_RoundTrip(t *testing.T) {
	wf := pwl.FromPairs([][2]float64{{0, 1}, {1, 2}, {2, 0.5}})
	path := t.TempDir() + "/out.pwl"
	require.NoError(t, WriteFile(path, wf, WriteOptions{}))

	back, err := ReadFile(path, ReadOptions{SkipStartLines: 1})
	require.NoError(t, err)
	assert.Equal(t, wf.Times, back.Times)
	assert.Equal(t, wf.Values, back.Values)
}
