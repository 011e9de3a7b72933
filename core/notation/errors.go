package notation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion error taxonomy. Every typed error below
// unwraps to one of these, so callers can classify failures with errors.Is
// without naming concrete types.
var (
	// ErrSplit indicates a line could not be divided into exactly two
	// coordinate substrings.
	ErrSplit = errors.New("cannot split coordinate pair")
	// ErrNotationMismatch indicates a token whose shape contradicts the
	// declared input notation.
	ErrNotationMismatch = errors.New("notation mismatch")
	// ErrFieldRange indicates an hour/minute/second sub-field outside its
	// local domain.
	ErrFieldRange = errors.New("field out of range")
	// ErrParse indicates a token that is not a valid numeric literal.
	ErrParse = errors.New("invalid numeric literal")
	// ErrRange indicates a final RA or Dec outside its global domain.
	ErrRange = errors.New("coordinate out of range")
)

// SplitError reports a line that could not be split into an RA and a Dec
// substring under the declared notation. For CasaDotted input this covers
// the exact-two-token requirement.
type SplitError struct {
	Line     string   // Raw input line (after epoch stripping)
	Notation Notation // Declared input notation
	Reason   string   // Why the split failed
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("cannot split %s input %q: %s", e.Notation, e.Line, e.Reason)
}

func (e *SplitError) Unwrap() error { return ErrSplit }

// NotationMismatchError reports a token whose shape contradicts the declared
// input notation, e.g. a dotted CASA declination under Decimal input.
type NotationMismatchError struct {
	Token    string   // Offending token
	Notation Notation // Declared input notation
	Reason   string   // What about the shape contradicts it
}

func (e *NotationMismatchError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("notation mismatch for %s input: %s", e.Notation, e.Reason)
	}
	return fmt.Sprintf("token %q does not look like %s input: %s", e.Token, e.Notation, e.Reason)
}

func (e *NotationMismatchError) Unwrap() error { return ErrNotationMismatch }

// CasaFieldError reports a CASA token with the wrong field structure, such as
// an RA without exactly three colon fields or a malformed dotted Dec.
type CasaFieldError struct {
	Axis  Axis   // Axis being parsed
	Token string // Offending token
	Want  string // Expected shape
}

func (e *CasaFieldError) Error() string {
	return fmt.Sprintf("CASA %s field %q: want %s", e.Axis, e.Token, e.Want)
}

func (e *CasaFieldError) Unwrap() error { return ErrParse }

// FieldRangeError reports an individual hour/minute/second field outside its
// local domain ([0,24) for hours, [0,60) for minutes and seconds).
type FieldRangeError struct {
	Axis  Axis    // Axis being parsed
	Field string  // Field name: "hours", "minutes", "seconds"
	Value float64 // Offending value
	Min   float64 // Inclusive lower bound
	Max   float64 // Exclusive upper bound
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%s %s out of range [%g,%g): %g", e.Axis, e.Field, e.Min, e.Max, e.Value)
}

func (e *FieldRangeError) Unwrap() error { return ErrFieldRange }

// ParseError reports a token that is not a valid numeric literal.
type ParseError struct {
	Axis  Axis   // Axis being parsed
	Token string // Offending token
	Err   error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s token %q is not numeric: %v", e.Axis, e.Token, e.Err)
	}
	return fmt.Sprintf("%s token %q is not numeric", e.Axis, e.Token)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// RangeError reports a final coordinate value outside its global domain.
// The upper bound is exclusive for RA and inclusive for Dec.
type RangeError struct {
	Axis  Axis    // Offending axis
	Value float64 // Value in decimal degrees
	Min   float64 // Lower bound (inclusive)
	Max   float64 // Upper bound
}

func (e *RangeError) Error() string {
	if e.Axis == AxisRA {
		return fmt.Sprintf("RA must be in [%g,%g): %g", e.Min, e.Max, e.Value)
	}
	return fmt.Sprintf("Dec must be in [%g,%g]: %g", e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// NewSplit creates a SplitError.
func NewSplit(line string, n Notation, reason string) *SplitError {
	return &SplitError{Line: line, Notation: n, Reason: reason}
}

// NewNotationMismatch creates a NotationMismatchError.
func NewNotationMismatch(token string, n Notation, reason string) *NotationMismatchError {
	return &NotationMismatchError{Token: token, Notation: n, Reason: reason}
}

// NewCasaField creates a CasaFieldError.
func NewCasaField(axis Axis, token, want string) *CasaFieldError {
	return &CasaFieldError{Axis: axis, Token: token, Want: want}
}

// NewFieldRange creates a FieldRangeError.
func NewFieldRange(axis Axis, field string, value, min, max float64) *FieldRangeError {
	return &FieldRangeError{Axis: axis, Field: field, Value: value, Min: min, Max: max}
}

// NewParse creates a ParseError.
func NewParse(axis Axis, token string, err error) *ParseError {
	return &ParseError{Axis: axis, Token: token, Err: err}
}

// NewRange creates a RangeError.
func NewRange(axis Axis, value, min, max float64) *RangeError {
	return &RangeError{Axis: axis, Value: value, Min: min, Max: max}
}
