package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "junipersky.yaml")

	content := `pair_delimiter: ", "
internal_delimiter: " "
ra_precision: 4
dec_precision: 3
log_level: debug
log_format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.PairDelimiter != ", " {
		t.Errorf("PairDelimiter = %q, want %q", d.PairDelimiter, ", ")
	}
	if d.InternalDelimiter != " " {
		t.Errorf("InternalDelimiter = %q, want space", d.InternalDelimiter)
	}
	if d.RAPrecision == nil || *d.RAPrecision != 4 {
		t.Errorf("RAPrecision = %v, want 4", d.RAPrecision)
	}
	if d.DecPrecision == nil || *d.DecPrecision != 3 {
		t.Errorf("DecPrecision = %v, want 3", d.DecPrecision)
	}
	if d.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", d.LogLevel)
	}
	if d.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", d.LogFormat)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.PairDelimiter != "" || d.RAPrecision != nil {
		t.Errorf("missing file should give zero defaults, got %+v", d)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("pair_delimiter: \"\\t\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.PairDelimiter != "\t" {
		t.Errorf("PairDelimiter = %q, want tab", d.PairDelimiter)
	}
	if d.RAPrecision != nil {
		t.Errorf("RAPrecision = %v, want nil", d.RAPrecision)
	}
}
