package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Stage", KeyStage, "load_docs", Stage("load_docs")},
		{"Path", KeyPath, "docs/one.md", Path("docs/one.md")},
		{"URI", KeyURI, "/one", URI("/one")},
		{"Title", KeyTitle, "One", Title("One")},
		{"Rule", KeyRule, "file", Rule("file")},
		{"DocsDir", KeyDocsDir, "docs", DocsDir("docs")},
		{"Config", KeyConfig, "docnav.yaml", Config("docnav.yaml")},
		{"Format", KeyFormat, "json", Format("json")},
		{"Output", KeyOutput, "nav.json", Output("nav.json")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s value = %q, want %q", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Links(3); a.Key != KeyLinks || a.Value.Int64() != 3 {
		t.Errorf("Links attr = %v", a)
	}
	if a := Elapsed(1500 * time.Microsecond); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("Elapsed attr = %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Errorf("nil error should log empty string, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Errorf("error value = %q", a.Value.String())
	}
}
