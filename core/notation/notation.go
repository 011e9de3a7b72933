// Package notation defines the data model for celestial coordinate
// conversion: the supported textual notations, parsed angle values, and
// conversion requests.
package notation

import (
	"fmt"
	"strings"
)

// Notation identifies a textual coordinate notation. It determines both how
// an input line is split into RA/Dec substrings and which grammar parses and
// formats each axis.
type Notation int

const (
	// Decimal is signed/unsigned decimal degrees (e.g. "271.087458 -29.519139").
	// A colon-delimited D:M:S form is also accepted on input, still measured
	// in degrees rather than hours.
	Decimal Notation = iota

	// Sexagesimal is HMS for RA and DMS for Dec, with colons, whitespace, or
	// unit-letter markers between fields (e.g. "18h04m20.99s -29:31:08.9").
	Sexagesimal

	// CasaDotted is the CASA convention: colon-delimited HMS RA paired with a
	// dot-delimited Dec (e.g. "09:54:56.82 +17.43.31.222").
	CasaDotted
)

// String returns the canonical lowercase name of the notation.
func (n Notation) String() string {
	switch n {
	case Decimal:
		return "degrees"
	case Sexagesimal:
		return "hmsdms"
	case CasaDotted:
		return "casa"
	default:
		return fmt.Sprintf("notation(%d)", int(n))
	}
}

// Valid reports whether n is one of the defined notations.
func (n Notation) Valid() bool {
	return n == Decimal || n == Sexagesimal || n == CasaDotted
}

// Parse maps a notation name to its Notation value. Accepted names are
// "degrees", "hmsdms", and "casa" (case-insensitive).
func Parse(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "decimal", "deg":
		return Decimal, nil
	case "hmsdms", "sexagesimal", "hms":
		return Sexagesimal, nil
	case "casa":
		return CasaDotted, nil
	default:
		return 0, fmt.Errorf("unknown notation %q (want degrees, hmsdms, or casa)", s)
	}
}

// Notations lists every defined notation in detection preference order.
func Notations() []Notation {
	return []Notation{Sexagesimal, Decimal, CasaDotted}
}

// MaxPrecision is the largest supported fractional digit count.
const MaxPrecision = 10

// ClampPrecision clamps a digit count into [0, MaxPrecision]. Out-of-range
// precision is never an error, only clamped.
func ClampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// FractionDigits counts the digits after the last decimal point of a numeric
// token, e.g. "12.345" -> 3. Tokens without a point count as 0.
func FractionDigits(s string) int {
	idx := strings.LastIndexByte(s, '.')
	if idx < 0 {
		return 0
	}
	return len(s) - idx - 1
}
