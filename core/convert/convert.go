// Package convert wires the conversion pipeline: split a line into RA and
// Dec, parse each to decimal degrees, validate ranges, resolve output
// precision, and render in the target notation.
//
// Every call is a pure function over its inputs: no shared state, no I/O.
// Lines in a batch are independent; a caller may convert them in any order.
package convert

import (
	"github.com/FocuswithJustin/JuniperSky/core/format"
	"github.com/FocuswithJustin/JuniperSky/core/notation"
	"github.com/FocuswithJustin/JuniperSky/core/parse"
	"github.com/FocuswithJustin/JuniperSky/core/precision"
)

// Convert translates one coordinate line between notations. Errors are
// typed (see core/notation) and always refer to this line only.
func Convert(line string, req notation.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	raTok, decTok, err := parse.Split(line, req.Input)
	if err != nil {
		return "", err
	}

	ra, err := parse.ToDegrees(raTok, true, req.Input)
	if err != nil {
		return "", err
	}
	dec, err := parse.ToDegrees(decTok, false, req.Input)
	if err != nil {
		return "", err
	}

	if err := ra.Validate(); err != nil {
		return "", err
	}
	if err := dec.Validate(); err != nil {
		return "", err
	}

	raPrec, decPrec := resolvePrecision(req, ra.Precision, dec.Precision)

	delim := req.InternalDelim()
	raStr := format.Angle(ra.Degrees, raPrec, true, req.Output, delim)
	decStr := format.Angle(dec.Degrees, decPrec, false, req.Output, delim)

	switch {
	case req.RAOnly:
		return raStr, nil
	case req.DecOnly:
		return decStr, nil
	default:
		return raStr + req.PairDelim() + decStr, nil
	}
}

// resolvePrecision decides the output digit count per axis: an explicit
// override always wins; otherwise the detected input precision is used,
// translated through the matcher when the request asks for matched
// precision across notations. The result is clamped to [0, MaxPrecision].
func resolvePrecision(req notation.Request, raDetected, decDetected int) (int, int) {
	raPrec, decPrec := raDetected, decDetected
	if req.MatchPrecision {
		raPrec, decPrec = precision.Match(req.Input, req.Output, raPrec, decPrec)
	}
	if req.RAPrecision != nil {
		raPrec = *req.RAPrecision
	}
	if req.DecPrecision != nil {
		decPrec = *req.DecPrecision
	}
	return notation.ClampPrecision(raPrec), notation.ClampPrecision(decPrec)
}
