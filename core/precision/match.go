package precision

import "github.com/FocuswithJustin/JuniperSky/core/notation"

// Match computes the output digit counts that carry roughly the same angular
// resolution as the detected input digit counts when translating between
// decimal degrees and sexagesimal seconds.
//
// One fractional digit of decimal degrees is 3.6 arcsec; one digit of Dec
// arc-seconds is 0.1 arcsec, and one digit of RA time-seconds is 1.5 arcsec.
// Preserving the digit count verbatim across notations would therefore
// silently change precision by two to three orders of magnitude.
func Match(in, out notation.Notation, raDetected, decDetected int) (raOut, decOut int) {
	raOut, decOut = raDetected, decDetected
	switch {
	case in == notation.Decimal && out != notation.Decimal:
		raOut -= 2
		decOut -= 3
	case in != notation.Decimal && out == notation.Decimal:
		raOut += 3
		decOut += 3
	}
	return notation.ClampPrecision(raOut), notation.ClampPrecision(decOut)
}
