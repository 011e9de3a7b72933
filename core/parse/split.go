// Package parse turns raw coordinate text into decimal-degree angle values.
// It contains the pair splitter and the per-notation grammars.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// epochMarker matches a J2000 epoch label: "J"/"j", optional whitespace,
// "2000", optional ".0". Epoch transformation is out of scope, so the label
// is simply removed before splitting.
var epochMarker = regexp.MustCompile(`\b[Jj]\s*2000(\.0)?\b\s*`)

// signSplit anchors the RA/Dec boundary at the first "+" or "-" that starts
// a token: the suffix from there is the Dec, the prefix is the RA.
var signSplit = regexp.MustCompile(`^(.*?)([+\-][0-9].*)$`)

// StripEpoch removes any J2000 epoch markers from a line.
func StripEpoch(line string) string {
	return strings.TrimSpace(epochMarker.ReplaceAllString(line, ""))
}

// Split divides a raw input line into its RA and Dec substrings according to
// the declared input notation. Epoch markers are stripped first. It fails
// with a SplitError when the line does not hold exactly two coordinates.
func Split(line string, in notation.Notation) (ra, dec string, err error) {
	cleaned := StripEpoch(line)
	if cleaned == "" {
		return "", "", notation.NewSplit(line, in, "empty line")
	}

	switch in {
	case notation.CasaDotted:
		parts := tokenize(cleaned)
		if len(parts) != 2 {
			return "", "", notation.NewSplit(cleaned, in,
				fmt.Sprintf("expected exactly 2 tokens, got %d", len(parts)))
		}
		return parts[0], parts[1], nil

	case notation.Sexagesimal:
		// Prefer the sign-anchored split: the Dec sign is the only reliable
		// boundary when fields are space-separated on both axes.
		if ra, dec, ok := splitOnSign(cleaned); ok {
			return ra, dec, nil
		}
		parts := strings.Fields(cleaned)
		if len(parts) == 2 {
			return parts[0], parts[1], nil
		}
		return "", "", notation.NewSplit(cleaned, in, "no sign-anchored or two-token split")

	case notation.Decimal:
		parts := tokenize(cleaned)
		if len(parts) == 2 {
			return parts[0], parts[1], nil
		}
		if ra, dec, ok := splitOnSign(cleaned); ok {
			return ra, dec, nil
		}
		return "", "", notation.NewSplit(cleaned, in, "no two-token or sign-anchored split")

	default:
		return "", "", notation.NewSplit(cleaned, in, "undefined notation")
	}
}

// tokenize splits on runs of commas and whitespace.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// splitOnSign applies the sign-anchored split. Commas are treated as spaces
// so "12:34:56,+45:23:45" anchors the same way.
func splitOnSign(s string) (ra, dec string, ok bool) {
	m := signSplit.FindStringSubmatch(strings.ReplaceAll(s, ",", " "))
	if m == nil {
		return "", "", false
	}
	ra = strings.TrimSpace(m[1])
	dec = strings.TrimSpace(m[2])
	if ra == "" {
		return "", "", false
	}
	return ra, dec, true
}
