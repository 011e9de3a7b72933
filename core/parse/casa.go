package parse

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

// casaRAGrammar is the participle grammar for a CASA right ascension:
// exactly three colon-delimited fields H:M:S with an optional fractional
// seconds part.
//
//nolint:govet // participle grammar tags are not standard struct tags
type casaRAGrammar struct {
	Hours   string `parser:"@Int ':'"`
	Minutes string `parser:"@Int ':'"`
	Seconds string `parser:"@(Num | Int)"`
}

var casaRALexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Num", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Colon", Pattern: `:`},
})

var casaRAParser = participle.MustBuild[casaRAGrammar](
	participle.Lexer(casaRALexer),
)

// casaDecGrammar is the participle grammar for a CASA dotted declination:
// [sign]DD.MM.SS with an optional fourth dotted group holding the fractional
// seconds digits. The digits are kept as strings so leading zeros in the
// fraction still count toward detected precision.
//
//nolint:govet // participle grammar tags are not standard struct tags
type casaDecGrammar struct {
	Sign    string `parser:"@Sign?"`
	Degrees string `parser:"@Int '.'"`
	Minutes string `parser:"@Int '.'"`
	Seconds string `parser:"@Int"`
	Frac    string `parser:"( '.' @Int )?"`
}

var casaDecLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sign", Pattern: `[+\-]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dot", Pattern: `\.`},
})

var casaDecParser = participle.MustBuild[casaDecGrammar](
	participle.Lexer(casaDecLexer),
)

// parseCasaRA parses a CASA right ascension (strict H:M:S colon triple).
func parseCasaRA(token string) (notation.Angle, error) {
	if strings.Count(token, ":") != 2 {
		return notation.Angle{}, notation.NewCasaField(notation.AxisRA, token,
			"exactly 3 colon-delimited fields H:M:S")
	}
	parsed, err := casaRAParser.ParseString("", token)
	if err != nil {
		return notation.Angle{}, notation.NewCasaField(notation.AxisRA, token,
			"H:M:S with numeric fields")
	}
	val, err := hmsValue(parsed.Hours, parsed.Minutes, parsed.Seconds)
	if err != nil {
		return notation.Angle{}, err
	}
	return notation.Angle{
		Degrees:   val,
		RA:        true,
		Precision: notation.FractionDigits(parsed.Seconds),
	}, nil
}

// parseCasaDec parses a CASA dotted declination. A missing sign means
// positive.
func parseCasaDec(token string) (notation.Angle, error) {
	parsed, err := casaDecParser.ParseString("", token)
	if err != nil {
		return notation.Angle{}, notation.NewCasaField(notation.AxisDec, token,
			"[sign]DD.MM.SS with optional .fraction")
	}

	seconds := parsed.Seconds
	prec := 0
	if parsed.Frac != "" {
		seconds = parsed.Seconds + "." + parsed.Frac
		prec = len(parsed.Frac)
	}

	degrees := parsed.Degrees
	if parsed.Sign == "-" {
		degrees = "-" + degrees
	}
	val, err := dmsValue(degrees, parsed.Minutes, seconds, notation.AxisDec)
	if err != nil {
		return notation.Angle{}, err
	}
	return notation.Angle{Degrees: val, RA: false, Precision: prec}, nil
}
