package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "docnav.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}
		file, exists := err.Context().GetString("file")
		if !exists || file != "docnav.yaml" {
			t.Errorf("expected context file=docnav.yaml, got %v", file)
		}
	})

	t.Run("Navigation errors require user action", func(t *testing.T) {
		err := NavigationError("rule does not match").Build()

		if !err.IsFatal() {
			t.Error("expected navigation error to be fatal")
		}
		if err.CanRetry() {
			t.Error("expected navigation error not to be retryable")
		}
		if err.RetryStrategy() != RetryUserAction {
			t.Errorf("expected retry %s, got %s", RetryUserAction, err.RetryStrategy())
		}
	})

	t.Run("Cause is reachable through wrapping", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := WrapError(sentinel, CategoryDocs, "walk failed").Build()
		wrapped := fmt.Errorf("build: %w", err)

		if !errors.Is(wrapped, sentinel) {
			t.Error("expected sentinel in chain")
		}
		if !HasCategory(wrapped, CategoryDocs) {
			t.Error("expected docs category through fmt wrapping")
		}
		if GetCategory(sentinel) != CategoryInternal {
			t.Error("expected unclassified error to default to internal")
		}
	})

	t.Run("Describe sorts context keys", func(t *testing.T) {
		err := ValidationError("bad rule").
			WithContext("path", "docs/x").
			WithContext("index", 2).
			Build()

		if got, want := err.Describe(), "bad rule (index=2, path=docs/x)"; got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})
}

func TestErrorContextMerge(t *testing.T) {
	base := ErrorContext{"a": 1, "b": 2}
	merged := base.Merge(ErrorContext{"b": 3})

	if merged["a"] != 1 || merged["b"] != 3 {
		t.Errorf("unexpected merge result: %v", merged)
	}
	if base["b"] != 2 {
		t.Error("merge must not mutate the receiver")
	}
}
