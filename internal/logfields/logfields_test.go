package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "conf.py", File("conf.py")},
		{"Command", KeyCommand, "sphinx-quickstart", Command("sphinx-quickstart")},
		{"Dir", KeyDir, "docs", Dir("docs")},
		{"Project", KeyProject, "proj", Project("proj")},
		{"Version", KeyVersion, "0.1.0", Version("0.1.0")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := ExitCode(3); a.Key != KeyExitCode || a.Value.Int64() != 3 {
		t.Fatalf("unexpected exit code attr: %v", a)
	}
	if a := DurationMS(12.5); a.Key != KeyDurationMS || a.Value.Float64() != 12.5 {
		t.Fatalf("unexpected duration attr: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	a := Error(errors.New("boom"))
	if a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
	if Error(nil).Value.String() != "" {
		t.Fatal("nil error should render empty value")
	}
}
