package convert

import (
	"strings"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// Detect guesses the input notation of a batch by trial conversion: every
// candidate notation is tried over all non-blank lines and the one producing
// the fewest per-line errors wins. Ties keep the earlier candidate in
// notation.Notations() order. There is no private parsing here; detection is
// purely repeated Convert calls and error counting.
func Detect(lines []string) (notation.Notation, int) {
	candidates := notation.Notations()
	best := candidates[0]
	bestFailures := -1

	for _, cand := range candidates {
		failures := 0
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			req := notation.Request{Input: cand, Output: notation.Decimal}
			if _, err := Convert(line, req); err != nil {
				failures++
			}
		}
		if bestFailures < 0 || failures < bestFailures {
			best = cand
			bestFailures = failures
		}
	}
	return best, bestFailures
}
