package precision

import (
	"math"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// units is the rescaling chain, coarsest first.
var units = []string{"arcsec", "mas", "µas"}

// Describe reports the rounding-error magnitude implied by a digit count as
// a human-readable string, e.g. "±5 mas". The unit is chosen so the numeric
// part lands in [0.1, 1000), clamping at either end of the
// arcsec → mas → µas chain. Invalid precision is clamped first; the lookup
// itself cannot fail.
func Describe(n notation.Notation, axis notation.Axis, precision int) string {
	entry := canonical(n, axis, precision)

	sign := ""
	rest := entry
	if strings.HasPrefix(entry, "±") {
		sign = "±"
		rest = strings.TrimPrefix(entry, "±")
	}

	fields := strings.Fields(rest)
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		// Table entries are static and well-formed; reaching here means the
		// table itself is broken.
		return entry
	}
	idx := unitIndex(fields[1])

	for value >= 1000 && idx > 0 {
		value /= 1000
		idx--
	}
	for value < 0.1 && idx < len(units)-1 {
		value *= 1000
		idx++
	}

	return sign + formatMagnitude(value) + " " + units[idx]
}

func unitIndex(unit string) int {
	for i, u := range units {
		if u == unit {
			return i
		}
	}
	return 0
}

// formatMagnitude renders the value with up to three decimal digits,
// trailing zeros trimmed. Values so small that three decimals round to zero
// (possible only when clamped at the µas end of the chain) get six decimals
// instead.
func formatMagnitude(v float64) string {
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 && v != 0 {
		rounded = math.Round(v*1e6) / 1e6
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
