package parse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// unitMarkers maps sexagesimal unit letters and symbols to spaces so that
// "18h04m20.99s" and "18 04 20.99" tokenize identically.
var unitMarkers = strings.NewReplacer(
	"h", " ", "H", " ",
	"d", " ", "D", " ",
	"m", " ", "M", " ",
	"s", " ", "S", " ",
	"°", " ", "'", " ", `"`, " ",
)

// ToDegrees parses a single coordinate substring into decimal degrees plus
// the number of fractional digits detected, according to the declared input
// notation. The axis matters: RA sexagesimal fields are hours of time and
// are converted to degrees by x15.
func ToDegrees(token string, isRA bool, in notation.Notation) (notation.Angle, error) {
	token = strings.TrimSpace(token)
	axis := notation.AxisDec
	if isRA {
		axis = notation.AxisRA
	}

	switch in {
	case notation.Decimal:
		return parseDecimal(token, isRA, axis)
	case notation.Sexagesimal:
		return parseSexagesimal(token, isRA, axis)
	case notation.CasaDotted:
		if isRA {
			return parseCasaRA(token)
		}
		return parseCasaDec(token)
	default:
		return notation.Angle{}, notation.NewNotationMismatch(token, in, "undefined notation")
	}
}

// parseDecimal handles Decimal-notation tokens. Plain floating-point
// literals are the common case; a colon-delimited D:M:S form (degrees, not
// hours) is also accepted. Tokens shaped like another notation are rejected
// as a mismatch rather than a numeric error, since the caller most likely
// mis-declared the input notation.
func parseDecimal(token string, isRA bool, axis notation.Axis) (notation.Angle, error) {
	if strings.ContainsRune(token, ':') {
		h, m, s, err := sexFields(token, axis)
		if err != nil {
			return notation.Angle{}, err
		}
		val, err := dmsValue(h, m, s, axis)
		if err != nil {
			return notation.Angle{}, err
		}
		return notation.Angle{Degrees: val, RA: isRA, Precision: notation.FractionDigits(s)}, nil
	}

	if strings.Count(token, ".") >= 2 {
		return notation.Angle{}, notation.NewNotationMismatch(token, notation.Decimal,
			"multiple decimal points suggest CASA dotted input")
	}
	if strings.ContainsAny(token, `hHdDmMsS°'"`) {
		return notation.Angle{}, notation.NewNotationMismatch(token, notation.Decimal,
			"sexagesimal unit markers suggest hmsdms input")
	}

	val, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return notation.Angle{}, notation.NewParse(axis, token, err)
	}
	return notation.Angle{Degrees: val, RA: isRA, Precision: notation.FractionDigits(token)}, nil
}

// parseSexagesimal handles HMS (RA) and DMS (Dec) tokens. Unit markers are
// stripped to spaces, then the token is split on colons and whitespace into
// up to three fields; missing trailing fields default to zero.
func parseSexagesimal(token string, isRA bool, axis notation.Axis) (notation.Angle, error) {
	h, m, s, err := sexFields(token, axis)
	if err != nil {
		return notation.Angle{}, err
	}

	var val float64
	if isRA {
		val, err = hmsValue(h, m, s)
	} else {
		val, err = dmsValue(h, m, s, axis)
	}
	if err != nil {
		return notation.Angle{}, err
	}
	return notation.Angle{Degrees: val, RA: isRA, Precision: notation.FractionDigits(s)}, nil
}

// sexFields tokenizes a sexagesimal coordinate into its three field strings.
// Fewer than three fields means the trailing ones are zero ("12 +45" is
// 12:00:00 +45:00:00).
func sexFields(token string, axis notation.Axis) (h, m, s string, err error) {
	cleaned := unitMarkers.Replace(token)
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return "", "", "", notation.NewParse(axis, token, nil)
	}
	for len(fields) < 3 {
		fields = append(fields, "0")
	}
	return fields[0], fields[1], fields[2], nil
}

// hmsValue converts hour/minute/second field strings to decimal degrees,
// validating each field's local domain.
func hmsValue(h, m, s string) (float64, error) {
	hh, err := fieldValue(notation.AxisRA, h)
	if err != nil {
		return 0, err
	}
	mm, err := fieldValue(notation.AxisRA, m)
	if err != nil {
		return 0, err
	}
	ss, err := fieldValue(notation.AxisRA, s)
	if err != nil {
		return 0, err
	}
	if hh < 0 || hh >= 24 {
		return 0, notation.NewFieldRange(notation.AxisRA, "hours", hh, 0, 24)
	}
	if mm < 0 || mm >= 60 {
		return 0, notation.NewFieldRange(notation.AxisRA, "minutes", mm, 0, 60)
	}
	if ss < 0 || ss >= 60 {
		return 0, notation.NewFieldRange(notation.AxisRA, "seconds", ss, 0, 60)
	}
	return (hh + mm/60 + ss/3600) * 15, nil
}

// dmsValue converts degree/minute/second field strings to decimal degrees.
// The sign of the degree field applies to the whole magnitude; the degree
// field itself has no upper bound here, the global range check is final.
func dmsValue(d, m, s string, axis notation.Axis) (float64, error) {
	sign := 1.0
	dStr := d
	switch {
	case strings.HasPrefix(dStr, "-"):
		sign = -1
		dStr = dStr[1:]
	case strings.HasPrefix(dStr, "+"):
		dStr = dStr[1:]
	}

	var dd float64
	if dStr != "" {
		var err error
		dd, err = fieldValue(axis, dStr)
		if err != nil {
			return 0, err
		}
	}
	mm, err := fieldValue(axis, m)
	if err != nil {
		return 0, err
	}
	ss, err := fieldValue(axis, s)
	if err != nil {
		return 0, err
	}
	if mm < 0 || mm >= 60 {
		return 0, notation.NewFieldRange(axis, "minutes", mm, 0, 60)
	}
	if ss < 0 || ss >= 60 {
		return 0, notation.NewFieldRange(axis, "seconds", ss, 0, 60)
	}
	return sign * (dd + mm/60 + ss/3600), nil
}

func fieldValue(axis notation.Axis, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, notation.NewParse(axis, field, err)
	}
	return v, nil
}
