// Package pwlio reads and writes piecewise-linear waveforms in the
// line-oriented two-column text format used by circuit simulators.
//
// Input is one sample per line, time then value, whitespace separated. A
// configurable number of header and trailer lines can be skipped, a
// continuation prefix (typically "+") is stripped from each line, and
// numeric tokens may carry a one-letter unit-scale suffix ("5u" is 5e-6).
//
// Output is a header line, an optional PWL definition line, and one
// prefixed sample line per point in 9-digit scientific notation.
package pwlio
