package pwlio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/go-pwl"
)

// DefaultHeadline is the header line written when none is configured.
const DefaultHeadline = "# s A"

// WriteOptions configures the PWL text writer. The zero value writes a
// "# s A" header, no PWL definition line, no closing token, and "+"
// continuation prefixes.
type WriteOptions struct {
	// Headline is the first line of the output. Empty selects
	// DefaultHeadline.
	Headline string

	// PWLDef is an optional waveform-definition line (a source card such
	// as "Vin in 0 PWL(") written after the headline. When present every
	// sample line carries the continuation prefix; when absent the first
	// sample line's prefix is omitted.
	PWLDef string

	// Footline is a closing token (such as ")") appended directly after
	// the last sample line.
	Footline string

	// ContinuationPrefix prefixes each sample line. Empty selects
	// DefaultContinuationPrefix.
	ContinuationPrefix string
}

// Write renders the waveform to w, one sample per line in 9-digit
// scientific notation.
func Write(w io.Writer, wf pwl.Waveform, opts WriteOptions) error {
	headline := opts.Headline
	if headline == "" {
		headline = DefaultHeadline
	}
	prefix := opts.ContinuationPrefix
	if prefix == "" {
		prefix = DefaultContinuationPrefix
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, headline); err != nil {
		return fmt.Errorf("pwlio: write: %w", err)
	}
	if opts.PWLDef != "" {
		if _, err := fmt.Fprintln(bw, opts.PWLDef); err != nil {
			return fmt.Errorf("pwlio: write: %w", err)
		}
	}

	for i := range wf.Times {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return fmt.Errorf("pwlio: write: %w", err)
			}
		}
		if i > 0 || opts.PWLDef != "" {
			if _, err := fmt.Fprintf(bw, "%s ", prefix); err != nil {
				return fmt.Errorf("pwlio: write: %w", err)
			}
		}
		if _, err := fmt.Fprintf(bw, "%.9e %.9e", wf.Times[i], wf.Values[i]); err != nil {
			return fmt.Errorf("pwlio: write: %w", err)
		}
	}
	if opts.Footline != "" {
		if _, err := fmt.Fprint(bw, opts.Footline); err != nil {
			return fmt.Errorf("pwlio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pwlio: write: %w", err)
	}
	return nil
}

// WriteFile renders the waveform to the file at path, creating or
// truncating it.
func WriteFile(path string, wf pwl.Waveform, opts WriteOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pwlio: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("pwlio: %w", closeErr)
		}
	}()
	return Write(f, wf, opts)
}
