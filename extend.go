package pwl

import "fmt"

// ClipConfig selects the time window of the pattern to tile. Nil boundaries
// default to the waveform's own begin and end times.
type ClipConfig struct {
	Start *float64
	End   *float64
}

// RepeatConfig controls the tiling step of ExtendByRepeating.
type RepeatConfig struct {
	// DropHead discards the samples before the clip window instead of
	// keeping them as a literal lead-in. The zero value keeps the head.
	DropHead bool

	// Gap is the tiling gap; nil derives it from the clipped pattern's
	// first two samples.
	Gap *float64
}

// ExtensionConfig bundles the three independent configuration groups of
// ExtendByRepeating. Its zero value clips nothing, keeps the head, applies
// no delay, and derives every boundary value from the waveform.
type ExtensionConfig struct {
	Clip   ClipConfig
	Repeat RepeatConfig
	Bounds BoundaryConfig
}

// ExtendByRepeating builds a bounded waveform spanning [0, stopTime] by
// tiling a clipped pattern of the input:
//
//  1. Cut the input at the clip window; the window defaults to the whole
//     waveform. Samples before the window form the head.
//  2. Re-anchor the clipped pattern and the head independently to 0. The
//     head is dropped (duration 0) when cfg.Repeat.DropHead is set.
//  3. Tile the pattern over stopTime - Delay - headDuration.
//  4. Catenate the head back in front of the tiled pattern.
//  5. Apply ModTime(stopTime, cfg.Bounds) for final delay and boundary
//     dressing.
//
// The clip window must select at least one sample.
func (w Waveform) ExtendByRepeating(stopTime float64, cfg ExtensionConfig) (Waveform, error) {
	if w.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.ExtendByRepeating: %w", ErrEmptyWaveform)
	}

	clipStart := w.BeginTime()
	if cfg.Clip.Start != nil {
		clipStart = *cfg.Clip.Start
	}
	clipEnd := w.EndTime()
	if cfg.Clip.End != nil {
		clipEnd = *cfg.Clip.End
	}

	clip, pre, _ := w.Cut(clipStart, clipEnd)
	if clip.IsEmpty() {
		return Waveform{}, fmt.Errorf("pwl.ExtendByRepeating: %w (clip window [%v, %v] selects no samples)",
			ErrEmptyWaveform, clipStart, clipEnd)
	}
	clip = clip.rebased()

	var headDuration float64
	if cfg.Repeat.DropHead {
		pre = Waveform{}
	} else if !pre.IsEmpty() {
		pre = pre.rebased()
		headDuration = pre.EndTime()
	}

	repeatLength := stopTime - cfg.Bounds.Delay - headDuration
	repeated, err := clip.RepeatTillStopTime(repeatLength, cfg.Repeat.Gap)
	if err != nil {
		return Waveform{}, err
	}

	joined, err := Catenate(pre, repeated, nil)
	if err != nil {
		return Waveform{}, err
	}
	return joined.ModTime(stopTime, cfg.Bounds)
}
