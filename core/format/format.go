// Package format renders decimal-degree angle values back into textual
// coordinate notations at a fixed digit precision.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// Angle renders a decimal-degree value in the target notation. precision is
// the fractional digit count and must already be clamped to
// [0, notation.MaxPrecision] by the caller; delim separates sexagesimal
// fields (ignored for Decimal output and for the dotted CASA Dec).
//
// Rendering is total: any in-range value formats without error.
func Angle(degrees float64, precision int, isRA bool, out notation.Notation, delim string) string {
	switch out {
	case notation.Decimal:
		return decimal(degrees, precision, isRA)
	case notation.Sexagesimal:
		if isRA {
			return hms(degrees, precision, delim)
		}
		return dms(degrees, precision, delim)
	case notation.CasaDotted:
		// CASA pairs a colon HMS RA with a dotted Dec.
		if isRA {
			return hms(degrees, precision, ":")
		}
		return casaDec(degrees, precision)
	default:
		return decimal(degrees, precision, isRA)
	}
}

// decimal renders fixed-point degrees. RA is unsigned; Dec always carries an
// explicit sign.
func decimal(degrees float64, precision int, isRA bool) string {
	s := strconv.FormatFloat(degrees, 'f', precision, 64)
	if !isRA && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// hms renders RA as zero-padded H:M:S, converting degrees to hours of time.
func hms(degrees float64, precision int, delim string) string {
	hours := math.Mod(degrees/15, 24)
	h, m, s := split60(hours)
	return fmt.Sprintf("%02d%s%02d%s%s", h, delim, m, delim, paddedSeconds(s, precision))
}

// dms renders Dec as signed zero-padded D:M:S.
func dms(degrees float64, precision int, delim string) string {
	sign := "+"
	if degrees < 0 {
		sign = "-"
	}
	d, m, s := split60(math.Abs(degrees))
	return fmt.Sprintf("%s%02d%s%02d%s%s", sign, d, delim, m, delim, paddedSeconds(s, precision))
}

// casaDec renders Dec in the dotted CASA form. The seconds field is exactly
// 2+1+precision characters wide when precision > 0, else two digits.
func casaDec(degrees float64, precision int) string {
	sign := "+"
	if degrees < 0 {
		sign = "-"
	}
	d, m, s := split60(math.Abs(degrees))
	var sec string
	if precision > 0 {
		sec = fmt.Sprintf("%0*.*f", precision+3, precision, s)
	} else {
		sec = fmt.Sprintf("%02.0f", s)
	}
	return fmt.Sprintf("%s%02d.%02d.%s", sign, d, m, sec)
}

// split60 breaks a non-negative value into its integer part, minutes, and
// fractional seconds by successive floor/remainder. The seconds are rounded
// later, at render time; a seconds field that rounds up to 60 is rendered as
// 60 rather than carried into the minutes field.
func split60(v float64) (int, int, float64) {
	i := int(v)
	rem := v - float64(i)
	m := int(rem * 60)
	s := (rem*60 - float64(m)) * 60
	return i, m, s
}

// paddedSeconds renders the seconds field with the integer part zero-padded
// to at least two digits, e.g. 8.9 at precision 2 -> "08.90".
func paddedSeconds(s float64, precision int) string {
	str := strconv.FormatFloat(s, 'f', precision, 64)
	if dot := strings.IndexByte(str, '.'); dot == 1 || (dot < 0 && len(str) == 1) {
		return "0" + str
	}
	return str
}
