package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestStringHelpers guards key names; renaming one silently breaks log queries.
func TestStringHelpers(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Summary", KeySummary, "boom", Summary("boom")},
		{"ColorMode", KeyColorMode, "never", ColorMode("never")},
		{"ConfigPath", KeyConfigPath, "usererror.yaml", ConfigPath("usererror.yaml")},
		{"Command", KeyCommand, "query", Command("query")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := ReasonCount(2); v.Key != KeyReasonCount || v.Value.Int64() != 2 {
		t.Fatalf("ReasonCount mismatch: %v", v)
	}
	if v := CauseCount(1); v.Key != KeyCauseCount || v.Value.Int64() != 1 {
		t.Fatalf("CauseCount mismatch: %v", v)
	}
	if v := ExitCode(1); v.Key != KeyExitCode || v.Value.Int64() != 1 {
		t.Fatalf("ExitCode mismatch: %v", v)
	}
}

func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errors.New("disk full"))
	if attr.Value.String() != "disk full" {
		t.Fatalf("Expected 'disk full', got %s", attr.Value.String())
	}
}
