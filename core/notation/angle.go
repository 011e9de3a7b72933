package notation

// Angle is a parsed coordinate axis value. RA values are stored in decimal
// degrees in [0, 360) after conversion from hours; Dec values in [-90, 90].
// Precision records the number of significant fractional digits detected in
// the source token (seconds field for sexagesimal forms).
type Angle struct {
	// Degrees is the value in decimal degrees.
	Degrees float64

	// RA is true for right ascension, false for declination.
	RA bool

	// Precision is the detected fractional digit count, >= 0.
	Precision int
}

// Validate enforces the global angular domain: RA in [0, 360), Dec in
// [-90, 90]. Violations return a RangeError and are never clamped.
func (a Angle) Validate() error {
	if a.RA {
		if a.Degrees < 0 || a.Degrees >= 360 {
			return NewRange(AxisRA, a.Degrees, 0, 360)
		}
		return nil
	}
	if a.Degrees < -90 || a.Degrees > 90 {
		return NewRange(AxisDec, a.Degrees, -90, 90)
	}
	return nil
}

// Axis names a coordinate axis in errors and lookups.
type Axis string

const (
	// AxisRA is right ascension.
	AxisRA Axis = "ra"
	// AxisDec is declination.
	AxisDec Axis = "dec"
)

// Request describes a single-line conversion. Every field is read-only for
// the duration of the call; the zero value converts Sexagesimal input to
// Decimal output with default delimiters.
type Request struct {
	// Input and Output select the notations to parse from and render to.
	Input  Notation
	Output Notation

	// InternalDelimiter separates sexagesimal fields in the output. Empty
	// means ":" for Sexagesimal and CasaDotted RA; it is unused for Decimal.
	InternalDelimiter string

	// PairDelimiter separates the formatted RA and Dec. Empty means a tab.
	PairDelimiter string

	// RAPrecision and DecPrecision override the output digit count per axis.
	// Nil means derive from the input (see MatchPrecision). Values are
	// clamped into [0, MaxPrecision].
	RAPrecision  *int
	DecPrecision *int

	// MatchPrecision translates detected input precision into an equivalent
	// output digit count when converting across notations, instead of
	// reusing the digit count verbatim.
	MatchPrecision bool

	// RAOnly and DecOnly restrict the output to a single axis.
	RAOnly  bool
	DecOnly bool
}

// InternalDelim returns the effective internal field delimiter.
func (r Request) InternalDelim() string {
	if r.InternalDelimiter == "" {
		return ":"
	}
	return r.InternalDelimiter
}

// PairDelim returns the effective RA/Dec pair delimiter.
func (r Request) PairDelim() string {
	if r.PairDelimiter == "" {
		return "\t"
	}
	return r.PairDelimiter
}

// Validate checks that the request names defined notations and does not ask
// for both single-axis outputs at once.
func (r Request) Validate() error {
	if !r.Input.Valid() {
		return NewNotationMismatch("", r.Input, "undefined input notation")
	}
	if !r.Output.Valid() {
		return NewNotationMismatch("", r.Output, "undefined output notation")
	}
	if r.RAOnly && r.DecOnly {
		return NewSplit("", r.Input, "ra-only and dec-only are mutually exclusive")
	}
	return nil
}
