// Package precision translates digit counts between notations and reports
// the physical rounding error a digit count implies.
package precision

import "github.com/FocuswithJustin/JuniperSky/core/notation"

// The tables below give the canonical rounding-error magnitude, in
// arcseconds, for each fractional digit count 0..10. Half of the last kept
// digit is the worst-case error:
//
//	decimal degrees  0.5 * 10^-n deg  = 1800 * 10^-n arcsec
//	RA time seconds  0.5 * 10^-n s   = 7.5  * 10^-n arcsec (1 s = 15 arcsec)
//	Dec arc seconds  0.5 * 10^-n "   = 0.5  * 10^-n arcsec
//
// RA and Dec share the decimal table (same unit); the sexagesimal table is
// paired because RA's native second is a time second.
var decimalTable = [notation.MaxPrecision + 1]string{
	"±1800 arcsec",
	"±180 arcsec",
	"±18 arcsec",
	"±1.8 arcsec",
	"±0.18 arcsec",
	"±0.018 arcsec",
	"±0.0018 arcsec",
	"±0.00018 arcsec",
	"±0.000018 arcsec",
	"±0.0000018 arcsec",
	"±0.00000018 arcsec",
}

// axisPair holds the RA and Dec halves of a sexagesimal table entry.
type axisPair struct {
	RA  string
	Dec string
}

var sexagesimalTable = [notation.MaxPrecision + 1]axisPair{
	{"±7.5 arcsec", "±0.5 arcsec"},
	{"±0.75 arcsec", "±0.05 arcsec"},
	{"±0.075 arcsec", "±0.005 arcsec"},
	{"±0.0075 arcsec", "±0.0005 arcsec"},
	{"±0.00075 arcsec", "±0.00005 arcsec"},
	{"±0.000075 arcsec", "±0.000005 arcsec"},
	{"±0.0000075 arcsec", "±0.0000005 arcsec"},
	{"±0.00000075 arcsec", "±0.00000005 arcsec"},
	{"±0.000000075 arcsec", "±0.000000005 arcsec"},
	{"±0.0000000075 arcsec", "±0.0000000005 arcsec"},
	{"±0.00000000075 arcsec", "±0.00000000005 arcsec"},
}

// canonical returns the table entry for a notation/axis/precision triple.
// CASA shares the sexagesimal table since its fields carry the same units.
// Precision is clamped, never rejected.
func canonical(n notation.Notation, axis notation.Axis, precision int) string {
	precision = notation.ClampPrecision(precision)
	if n == notation.Decimal {
		return decimalTable[precision]
	}
	pair := sexagesimalTable[precision]
	if axis == notation.AxisRA {
		return pair.RA
	}
	return pair.Dec
}
