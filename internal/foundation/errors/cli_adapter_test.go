package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("bad rule").Build(), expected: 2},
		{name: "config error", err: ConfigError("missing file").Build(), expected: 7},
		{name: "navigation error", err: NavigationError("unmatched").Build(), expected: 7},
		{name: "docs error", err: DocsError("walk failed").Build(), expected: 11},
		{name: "internal error", err: InternalError("bug").Build(), expected: 10},
		{name: "unclassified error", err: errors.New("unknown"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := NavigationError("navigation rule does not match any page").
		WithContext("path", "docs/missing.md").
		Build()

	quiet := NewCLIErrorAdapter(false, nil)
	if got := quiet.FormatError(err); !strings.Contains(got, "path=docs/missing.md") {
		t.Errorf("expected path in message, got %q", got)
	}

	verbose := NewCLIErrorAdapter(true, nil)
	if got := verbose.FormatError(err); !strings.Contains(got, "[navigation:fatal]") {
		t.Errorf("expected classification prefix in verbose message, got %q", got)
	}

	if got := quiet.FormatError(InternalError("bug").Build()); !strings.Contains(got, "use -v") {
		t.Errorf("expected internal errors to be hidden, got %q", got)
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out

	code := adapter.Report(ConfigError("config not found").WithContext("file", "docnav.yaml").Build())

	if code != 7 {
		t.Errorf("expected exit code 7, got %d", code)
	}
	if !strings.Contains(out.String(), "config not found") {
		t.Errorf("expected message on output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "category=config") {
		t.Errorf("expected category in log line, got %q", logs.String())
	}
}
