package format

import (
	"testing"

	"github.com/FocuswithJustin/JuniperSky/core/notation"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		degrees   float64
		precision int
		isRA      bool
		want      string
	}{
		{271.087458, 6, true, "271.087458"},
		{271.087458, 3, true, "271.087"},
		{271.0, 0, true, "271"},
		// Dec always carries an explicit sign.
		{29.519139, 6, false, "+29.519139"},
		{-29.519139, 6, false, "-29.519139"},
		{0, 2, false, "+0.00"},
	}
	for _, tt := range tests {
		got := Angle(tt.degrees, tt.precision, tt.isRA, notation.Decimal, "")
		if got != tt.want {
			t.Errorf("Angle(%v, %d) = %q, want %q", tt.degrees, tt.precision, got, tt.want)
		}
	}
}

func TestSexagesimalRA(t *testing.T) {
	tests := []struct {
		degrees   float64
		precision int
		delim     string
		want      string
	}{
		{(18 + 4.0/60 + 20.99/3600) * 15, 2, ":", "18:04:20.99"},
		{(18 + 4.0/60 + 20.99/3600) * 15, 2, " ", "18 04 20.99"},
		{180, 2, ":", "12:00:00.00"},
		{180, 0, ":", "12:00:00"},
		// Single-digit fields zero-pad to width 2.
		{(2 + 34.0/60 + 56.0/3600) * 15, 2, ":", "02:34:56.00"},
	}
	for _, tt := range tests {
		got := Angle(tt.degrees, tt.precision, true, notation.Sexagesimal, tt.delim)
		if got != tt.want {
			t.Errorf("Angle(%v, %d, %q) = %q, want %q", tt.degrees, tt.precision, tt.delim, got, tt.want)
		}
	}
}

func TestSexagesimalDec(t *testing.T) {
	tests := []struct {
		degrees   float64
		precision int
		want      string
	}{
		// Seconds pad to two integer digits: "08.90", never "8.90".
		{-(29 + 31.0/60 + 8.9/3600), 2, "-29:31:08.90"},
		{-(29 + 31.0/60 + 8.9/3600), 1, "-29:31:08.9"},
		{45 + 23.0/60 + 45.0/3600, 2, "+45:23:45.00"},
		{45, 2, "+45:00:00.00"},
		{5 + 23.0/60 + 45.0/3600, 2, "+05:23:45.00"},
		{0, 0, "+00:00:00"},
	}
	for _, tt := range tests {
		got := Angle(tt.degrees, tt.precision, false, notation.Sexagesimal, ":")
		if got != tt.want {
			t.Errorf("Angle(%v, %d) = %q, want %q", tt.degrees, tt.precision, got, tt.want)
		}
	}
}

// Rounding the seconds field up to the next minute is deliberately not
// carried into the minutes field: 59.9996s at precision 2 renders as 60.00.
func TestSexagesimalNoCarryAtSixty(t *testing.T) {
	dec := 59.9996 / 3600
	got := Angle(dec, 2, false, notation.Sexagesimal, ":")
	want := "+00:00:60.00"
	if got != want {
		t.Errorf("Angle(%v, 2) = %q, want %q", dec, got, want)
	}
}

func TestCasaDec(t *testing.T) {
	tests := []struct {
		degrees   float64
		precision int
		want      string
	}{
		{17 + 43.0/60 + 31.224/3600, 3, "+17.43.31.224"},
		{-(17 + 43.0/60 + 31.224/3600), 3, "-17.43.31.224"},
		// Seconds field is exactly 2+1+precision characters wide.
		{5 + 3.0/60 + 8.9/3600, 2, "+05.03.08.90"},
		{5 + 3.0/60 + 8.0/3600, 0, "+05.03.08"},
	}
	for _, tt := range tests {
		got := Angle(tt.degrees, tt.precision, false, notation.CasaDotted, ":")
		if got != tt.want {
			t.Errorf("Angle(%v, %d) = %q, want %q", tt.degrees, tt.precision, got, tt.want)
		}
	}
}

func TestCasaRAUsesColons(t *testing.T) {
	// CASA pairs a colon HMS RA with the dotted Dec, whatever the internal
	// delimiter says.
	got := Angle(148.73675, 2, true, notation.CasaDotted, ".")
	want := "09:54:56.82"
	if got != want {
		t.Errorf("Angle(148.73675, 2) = %q, want %q", got, want)
	}
}

func TestPaddedSeconds(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{0, 2, "00.00"},
		{8.9, 2, "08.90"},
		{12.34, 2, "12.34"},
		{5, 0, "05"},
		{59.6, 0, "60"},
	}
	for _, tt := range tests {
		if got := paddedSeconds(tt.value, tt.precision); got != tt.want {
			t.Errorf("paddedSeconds(%v, %d) = %q, want %q", tt.value, tt.precision, got, tt.want)
		}
	}
}
