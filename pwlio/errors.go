package pwlio

import "errors"

// Common errors returned by the reader.
var (
	// ErrMalformedLine indicates a data line that did not split into
	// exactly two whitespace-separated tokens.
	ErrMalformedLine = errors.New("line is not a two-column sample")

	// ErrUnknownScale indicates a numeric token whose suffix letter is
	// not a known unit scale.
	ErrUnknownScale = errors.New("unknown unit-scale suffix")

	// ErrNotEnoughLines indicates the skip and ignore counts exceed the
	// input's line count.
	ErrNotEnoughLines = errors.New("fewer lines than the skip and ignore counts")
)
