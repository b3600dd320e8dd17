// Package pwl manipulates piecewise-linear (PWL) waveform descriptions:
// ordered sequences of (time, value) samples used as stimulus or comparison
// traces in circuit-level analysis.
//
// A [Waveform] holds the sample columns. All operations are pure: they take
// their inputs by value, never mutate caller-visible data, and return a new
// waveform whose time column is non-decreasing. Where an operation documents
// a "re-anchor" step, the output time column begins at 0.
//
// # Quick Start
//
//	wf, err := pwl.New([]float64{0, 1e-9, 2e-9}, []float64{0, 1.2, 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Tile the pulse out to 10 ns, then raise the swing by 10%.
//	out, err := wf.RepeatTillStopTime(10e-9, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out = out.ScaleAmp(1.1)
//
// The composite [Waveform.ExtendByRepeating] builds a bounded waveform that
// optionally preserves a literal head segment, fills the remainder by tiling
// a clipped pattern, and applies final delay and boundary dressing:
//
//	out, err := wf.ExtendByRepeating(100e-9, pwl.ExtensionConfig{
//	    Clip:   pwl.ClipConfig{Start: pwl.Float(2e-9)},
//	    Bounds: pwl.BoundaryConfig{Delay: 5e-9},
//	})
//
// # Optional parameters
//
// Several operations take optional scalar parameters (a tiling gap, a clip
// boundary, a boundary value) whose absence means "derive it from the
// waveform itself". These are expressed as *float64 fields and arguments;
// nil selects the derived default and [Float] builds a pointer inline.
//
// # Reading and writing
//
// The text format collaborators live in the pwlio subpackage: line-oriented
// two-column input with optional unit-scale suffixes ("5u" is 5e-6), and
// simulator-style PWL output with continuation prefixes.
//
// # Concurrency
//
// Operations share no state and defensively copy anything they adjust, so
// independent waveforms may be processed from concurrent goroutines without
// coordination.
package pwl
