package pwl

import "errors"

// Common errors returned by waveform operations. Errors are wrapped with the
// operation name and the offending value; use errors.Is to classify them.
var (
	// ErrEmptyWaveform indicates an operation that needs at least one
	// sample was given a zero-length waveform.
	ErrEmptyWaveform = errors.New("waveform has no samples")

	// ErrTooFewSamples indicates a step size had to be derived from the
	// first two samples but fewer than two were present.
	ErrTooFewSamples = errors.New("waveform has too few samples to derive a step")

	// ErrNonPositiveDuration indicates a duration-driven operation was
	// given a waveform whose end time does not exceed its begin time.
	ErrNonPositiveDuration = errors.New("waveform duration must be positive")

	// ErrNegativeCount indicates a negative repetition count.
	ErrNegativeCount = errors.New("repeat count must be non-negative")

	// ErrColumnMismatch indicates time and value columns of unequal length.
	ErrColumnMismatch = errors.New("time and value columns differ in length")
)
