package pwlio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/go-pwl"
)

// Default reader settings.
const (
	// DefaultContinuationPrefix is the line-continuation symbol stripped
	// from data lines (SPICE deck convention).
	DefaultContinuationPrefix = "+"
)

// ReadOptions configures the PWL text reader. The zero value reads a bare
// two-column file: no lines skipped, "+" continuation prefix, unit scales
// of 1, no suffix parsing.
type ReadOptions struct {
	// SkipStartLines drops this many lines from the start of the input
	// (headers, source definitions).
	SkipStartLines int

	// IgnoreEndLines drops this many lines from the end of the input
	// (closing tokens, trailers).
	IgnoreEndLines int

	// ContinuationPrefix is stripped from the start of each data line.
	// Empty selects DefaultContinuationPrefix.
	ContinuationPrefix string

	// TimeScale multiplies the time column. 0 is treated as 1.
	TimeScale float64

	// ValueScale multiplies the value column. 0 is treated as 1.
	ValueScale float64

	// ParseUnitSuffix enables unit-scale suffix parsing ("5u" -> 5e-6)
	// on both columns. Without it tokens must be plain float literals.
	ParseUnitSuffix bool
}

// Read parses a PWL waveform from r according to opts.
func Read(r io.Reader, opts ReadOptions) (pwl.Waveform, error) {
	prefix := opts.ContinuationPrefix
	if prefix == "" {
		prefix = DefaultContinuationPrefix
	}
	timeScale := opts.TimeScale
	if timeScale == 0 {
		timeScale = 1
	}
	valueScale := opts.ValueScale
	if valueScale == 0 {
		valueScale = 1
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return pwl.Waveform{}, fmt.Errorf("pwlio: read: %w", err)
	}

	if len(lines) < opts.SkipStartLines+opts.IgnoreEndLines {
		return pwl.Waveform{}, fmt.Errorf("pwlio: %w (%d lines, skip %d, ignore %d)",
			ErrNotEnoughLines, len(lines), opts.SkipStartLines, opts.IgnoreEndLines)
	}
	lines = lines[opts.SkipStartLines : len(lines)-opts.IgnoreEndLines]

	var times, values []float64
	for i, line := range lines {
		line = strings.TrimSpace(strings.TrimLeft(line, prefix))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return pwl.Waveform{}, fmt.Errorf("pwlio: line %d: %w (%d tokens in %q)",
				opts.SkipStartLines+i+1, ErrMalformedLine, len(fields), line)
		}

		t, err := parseToken(fields[0], opts.ParseUnitSuffix)
		if err != nil {
			return pwl.Waveform{}, fmt.Errorf("pwlio: line %d: %w", opts.SkipStartLines+i+1, err)
		}
		v, err := parseToken(fields[1], opts.ParseUnitSuffix)
		if err != nil {
			return pwl.Waveform{}, fmt.Errorf("pwlio: line %d: %w", opts.SkipStartLines+i+1, err)
		}
		times = append(times, t*timeScale)
		values = append(values, v*valueScale)
	}
	return pwl.Waveform{Times: times, Values: values}, nil
}

// ReadFile parses a PWL waveform from the file at path.
func ReadFile(path string, opts ReadOptions) (pwl.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return pwl.Waveform{}, fmt.Errorf("pwlio: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, opts)
}

func parseToken(s string, withSuffix bool) (float64, error) {
	if withSuffix {
		return ParseValue(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}
