package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{
			name:   "Debug level JSON format",
			level:  LevelDebug,
			format: FormatJSON,
		},
		{
			name:   "Info level Text format",
			level:  LevelInfo,
			format: FormatText,
		},
		{
			name:   "Warn level JSON format",
			level:  LevelWarn,
			format: FormatJSON,
		},
		{
			name:   "Error level Text format",
			level:  LevelError,
			format: FormatText,
		},
		{
			name:   "Default level (invalid value)",
			level:  Level(999),
			format: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("json"); got != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, want FormatJSON", got)
	}
	if got := ParseFormat("text"); got != FormatText {
		t.Errorf("ParseFormat(text) = %v, want FormatText", got)
	}
	if got := ParseFormat(""); got != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, want FormatText", got)
	}
}

func TestLoggingFunctions(t *testing.T) {
	InitLogger(LevelDebug, FormatJSON)

	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "Debug",
			fn: func() {
				Debug("debug message", "key", "value")
			},
		},
		{
			name: "Info",
			fn: func() {
				Info("info message", "key", "value")
			},
		},
		{
			name: "Warn",
			fn: func() {
				Warn("warning message", "key", "value")
			},
		},
		{
			name: "Error",
			fn: func() {
				Error("error message", "key", "value")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if output == "" {
				t.Error("Expected log output, got empty string")
			}
		})
	}
}

func TestBatchStart(t *testing.T) {
	InitLogger(LevelInfo, FormatJSON)

	output := captureLogOutput(func() {
		BatchStart("run-123", 42, "hmsdms", "degrees")
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "run-123") {
		t.Error("Expected output to contain run ID")
	}
	if !strings.Contains(output, "hmsdms") {
		t.Error("Expected output to contain input notation")
	}
	if !strings.Contains(output, "batch_start") {
		t.Error("Expected output to contain batch_start")
	}
}

func TestBatchDone(t *testing.T) {
	InitLogger(LevelInfo, FormatJSON)

	output := captureLogOutput(func() {
		BatchDone("run-456", 40, 2, 150*time.Millisecond)
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "run-456") {
		t.Error("Expected output to contain run ID")
	}
	if !strings.Contains(output, "batch_done") {
		t.Error("Expected output to contain batch_done")
	}
	if !strings.Contains(output, "duration_ms") {
		t.Error("Expected output to contain duration")
	}
}

func TestLineError(t *testing.T) {
	InitLogger(LevelDebug, FormatJSON)
	testErr := errors.New("could not split line")

	output := captureLogOutput(func() {
		LineError("run-789", 7, testErr)
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "run-789") {
		t.Error("Expected output to contain run ID")
	}
	if !strings.Contains(output, "could not split line") {
		t.Error("Expected output to contain error message")
	}
	if !strings.Contains(output, "line_error") {
		t.Error("Expected output to contain line_error")
	}
}

func TestInit(t *testing.T) {
	// The init function should have already run and initialized the logger
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo {
		t.Error("Expected LevelDebug < LevelInfo")
	}
	if LevelInfo >= LevelWarn {
		t.Error("Expected LevelInfo < LevelWarn")
	}
	if LevelWarn >= LevelError {
		t.Error("Expected LevelWarn < LevelError")
	}
}
