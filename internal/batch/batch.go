// Package batch drives per-line conversion over many input lines. The core
// engine converts one line at a time; this driver feeds it, captures
// per-line failures without stopping the run, and reports a summary.
package batch

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/JuniperSky/core/convert"
	"github.com/FocuswithJustin/JuniperSky/core/notation"
	"github.com/FocuswithJustin/JuniperSky/internal/logging"
)

// MaxLines caps a single batch. The cap bounds caller latency, it is not an
// engine constraint.
const MaxLines = 5000

// ErrTooManyLines is returned when a batch exceeds MaxLines.
var ErrTooManyLines = errors.New("too many input lines")

// Result is the outcome of converting one input line. Exactly one of Output
// and Err is meaningful.
type Result struct {
	// Index is the zero-based line number in the original input.
	Index int

	// Line is the raw input line.
	Line string

	// Output is the converted line when Err is nil.
	Output string

	// Err is the typed conversion error for this line, if any.
	Err error
}

// Summary describes a completed batch run.
type Summary struct {
	// RunID tags every log line of this run.
	RunID string

	// Total counts non-blank input lines.
	Total int

	// Converted counts successful lines.
	Converted int

	// Failed counts lines that raised a conversion error.
	Failed int
}

// Run converts every non-blank line with the same request. Blank lines are
// skipped; a failing line never affects its siblings. Lines are processed
// in order, sequentially.
func Run(lines []string, req notation.Request) ([]Result, Summary, error) {
	if len(lines) > MaxLines {
		return nil, Summary{}, ErrTooManyLines
	}

	summary := Summary{RunID: uuid.New().String()}
	logging.BatchStart(summary.RunID, len(lines), req.Input.String(), req.Output.String())
	start := time.Now()

	results := make([]Result, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		summary.Total++

		out, err := convert.Convert(line, req)
		if err != nil {
			summary.Failed++
			logging.LineError(summary.RunID, i, err)
			results = append(results, Result{Index: i, Line: line, Err: err})
			continue
		}
		summary.Converted++
		results = append(results, Result{Index: i, Line: line, Output: out})
	}

	logging.BatchDone(summary.RunID, summary.Converted, summary.Failed, time.Since(start))
	return results, summary, nil
}
