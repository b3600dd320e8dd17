package pwlio

import (
	"fmt"
	"strconv"
)

// unitScale maps a one-letter scale suffix to its power-of-ten multiplier.
var unitScale = map[byte]float64{
	'p': 1e-12,
	'n': 1e-9,
	'u': 1e-6,
	'm': 1e-3,
	'c': 1e-2,
	'd': 1e-1,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
}

// ParseValue parses a numeric literal with an optional one-letter unit-scale
// suffix, e.g. "5u" -> 5e-6 or "3nF" -> 3e-9. Suffix detection triggers on
// the first ASCII letter other than e or E, so scientific notation like
// "1.5e-9" passes through untouched; anything after the suffix letter (a
// unit name such as F or V) is ignored. A letter outside the scale table is
// an ErrUnknownScale.
func ParseValue(s string) (float64, error) {
	idx := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLetter(c) && c != 'e' && c != 'E' {
			idx = i
			break
		}
	}
	if idx < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", s, err)
		}
		return v, nil
	}

	scale, ok := unitScale[s[idx]]
	if !ok {
		return 0, fmt.Errorf("%w: %q in %q", ErrUnknownScale, string(s[idx]), s)
	}
	v, err := strconv.ParseFloat(s[:idx], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return v * scale, nil
}

// HasScaleSuffix reports whether s carries a unit-scale suffix letter.
func HasScaleSuffix(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLetter(c) && c != 'e' && c != 'E' {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
