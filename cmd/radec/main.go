// Command radec converts celestial RA/Dec coordinate pairs between textual
// notations: decimal degrees, sexagesimal HMS/DMS, and the dotted CASA form.
//
// Usage:
//
//	radec convert --from hmsdms --to degrees [file]
//	radec detect [file]
//	radec error --notation hmsdms --axis dec --precision 3
//	radec version
package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperSky/core/convert"
	"github.com/FocuswithJustin/JuniperSky/core/notation"
	"github.com/FocuswithJustin/JuniperSky/core/precision"
	"github.com/FocuswithJustin/JuniperSky/internal/batch"
	"github.com/FocuswithJustin/JuniperSky/internal/config"
	"github.com/FocuswithJustin/JuniperSky/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for radec.
var CLI struct {
	// Global flags
	Config    string `name:"config" help:"Path to defaults file (default: ~/.junipersky.yaml)" type:"path"`
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Convert ConvertCmd `cmd:"" help:"Convert coordinate lines between notations"`
	Detect  DetectCmd  `cmd:"" help:"Auto-detect the input notation of a batch"`
	Error   ErrorCmd   `cmd:"" help:"Report the rounding error implied by a digit count"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// loadDefaults reads the YAML defaults file named by --config, falling back
// to the home-directory location.
func loadDefaults() (*config.Defaults, error) {
	path := CLI.Config
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return &config.Defaults{}, nil
	}
	return config.Load(path)
}

// readLines collects input lines from a file, or stdin when path is empty.
func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ConvertCmd converts a batch of coordinate lines.
type ConvertCmd struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)" type:"existingfile"`

	From string `name:"from" default:"hmsdms" enum:"degrees,hmsdms,casa" help:"Input notation"`
	To   string `name:"to" default:"degrees" enum:"degrees,hmsdms,casa" help:"Output notation"`

	InternalDelimiter string `name:"internal-delimiter" help:"Delimiter between sexagesimal fields (default \":\")"`
	PairDelimiter     string `name:"pair-delimiter" help:"Delimiter between RA and Dec (default tab)"`

	RAPrecision  *int `name:"ra-precision" help:"Fractional digits for RA (0-10)"`
	DecPrecision *int `name:"dec-precision" help:"Fractional digits for Dec (0-10)"`

	MatchPrecision   bool `name:"match-precision" help:"Translate detected precision across notations"`
	DefaultPrecision bool `name:"default-precision" help:"Use fixed defaults (7/6 for degrees output, 2/2 otherwise)"`

	RAOnly  bool `name:"ra-only" help:"Output only the RA column"`
	DecOnly bool `name:"dec-only" help:"Output only the Dec column"`

	CSV bool `name:"csv" help:"Emit CSV records: line,output,error"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run() error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	in, err := notation.Parse(c.From)
	if err != nil {
		return err
	}
	out, err := notation.Parse(c.To)
	if err != nil {
		return err
	}

	req := notation.Request{
		Input:             in,
		Output:            out,
		InternalDelimiter: firstOf(c.InternalDelimiter, defaults.InternalDelimiter),
		PairDelimiter:     firstOf(c.PairDelimiter, defaults.PairDelimiter),
		RAPrecision:       firstPrec(c.RAPrecision, defaults.RAPrecision),
		DecPrecision:      firstPrec(c.DecPrecision, defaults.DecPrecision),
		MatchPrecision:    c.MatchPrecision,
		RAOnly:            c.RAOnly,
		DecOnly:           c.DecOnly,
	}

	if c.DefaultPrecision {
		raDef, decDef := 2, 2
		if out == notation.Decimal {
			raDef, decDef = 7, 6
		}
		if req.RAPrecision == nil {
			req.RAPrecision = &raDef
		}
		if req.DecPrecision == nil {
			req.DecPrecision = &decDef
		}
	}

	lines, err := readLines(c.File)
	if err != nil {
		return err
	}

	results, summary, err := batch.Run(lines, req)
	if err != nil {
		return err
	}

	if c.CSV {
		return writeCSV(os.Stdout, results)
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", res.Index+1, res.Err)
			continue
		}
		fmt.Println(res.Output)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d lines failed", summary.Failed, summary.Total)
	}
	return nil
}

// writeCSV emits one record per line: input, output, error message.
func writeCSV(w io.Writer, results []batch.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"line", "output", "error"}); err != nil {
		return err
	}
	for _, res := range results {
		errMsg := ""
		if res.Err != nil {
			errMsg = res.Err.Error()
		}
		if err := cw.Write([]string{res.Line, res.Output, errMsg}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DetectCmd guesses the input notation of a batch.
type DetectCmd struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)" type:"existingfile"`
}

// Run executes the detect command.
func (c *DetectCmd) Run() error {
	lines, err := readLines(c.File)
	if err != nil {
		return err
	}
	best, failures := convert.Detect(lines)
	fmt.Printf("%s (%d lines failed under it)\n", best, failures)
	return nil
}

// ErrorCmd reports the rounding-error magnitude for a digit count.
type ErrorCmd struct {
	Notation  string `name:"notation" default:"hmsdms" enum:"degrees,hmsdms,casa" help:"Notation"`
	Axis      string `name:"axis" default:"dec" enum:"ra,dec" help:"Coordinate axis"`
	Precision int    `name:"precision" default:"2" help:"Fractional digit count (0-10)"`
}

// Run executes the error command.
func (c *ErrorCmd) Run() error {
	n, err := notation.Parse(c.Notation)
	if err != nil {
		return err
	}
	axis := notation.AxisDec
	if c.Axis == "ra" {
		axis = notation.AxisRA
	}
	fmt.Println(precision.Describe(n, axis, c.Precision))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("radec %s\n", version)
	return nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPrec(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("radec"),
		kong.Description("JuniperSky - RA/Dec coordinate notation converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	defaults, err := loadDefaults()
	if err != nil {
		ctx.FatalIfErrorf(err)
	}
	level, format := CLI.LogLevel, CLI.LogFormat
	if defaults.LogLevel != "" && level == "info" {
		level = defaults.LogLevel
	}
	if defaults.LogFormat != "" && format == "text" {
		format = defaults.LogFormat
	}
	logging.InitLogger(logging.ParseLevel(level), logging.ParseFormat(format))

	err = ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
