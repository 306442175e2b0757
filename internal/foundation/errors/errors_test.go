package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "mkdocs.yml").
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
		if !exists || file != "mkdocs.yml" {
			t.Errorf("expected context file=mkdocs.yml, got %v", file)
		}
	})

	t.Run("Error string", func(t *testing.T) {
		plain := ValidationError("two files collide").Build()
		if got := plain.Error(); got != "[validation:fatal] two files collide" {
			t.Errorf("Error() = %q", got)
		}
		wrapped := WrapError(errSentinel, CategoryConfig, "bad pattern").Fatal().Build()
		if got := wrapped.Error(); got != "[config:fatal] bad pattern: sentinel" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("Sentinel survives wrapping", func(t *testing.T) {
		err := WrapError(errSentinel, CategoryValidation, "collision").Build()
		outer := fmt.Errorf("files phase: %w", err)

		if !errors.Is(outer, errSentinel) {
			t.Error("expected errors.Is to find the sentinel through the chain")
		}
		classified, ok := AsClassified(outer)
		if !ok {
			t.Fatal("expected AsClassified to find the classified error")
		}
		if classified.Category() != CategoryValidation {
			t.Errorf("expected validation category, got %s", classified.Category())
		}
		if !HasCategory(outer, CategoryValidation) {
			t.Error("expected HasCategory to look through wrapping")
		}
	})

	t.Run("WithContext does not mutate the receiver", func(t *testing.T) {
		base := ConfigError("bad").Build()
		derived := base.WithContext("pattern", "[")
		if _, ok := base.Context().Get("pattern"); ok {
			t.Error("receiver context was modified")
		}
		if v, _ := derived.Context().GetString("pattern"); v != "[" {
			t.Errorf("expected derived context pattern=[, got %q", v)
		}
	})
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
		severity ErrorSeverity
		retry    RetryStrategy
	}{
		{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal, RetryUserAction},
		{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal, RetryUserAction},
		{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityFatal, RetryNever},
		{"BuildError", BuildError("test"), CategoryBuild, SeverityFatal, RetryNever},
		{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError, RetryImmediate},
		{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal, RetryNever},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.builder.Build()
			if err.Category() != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, err.Category())
			}
			if err.Severity() != tt.severity {
				t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
			}
			if err.RetryStrategy() != tt.retry {
				t.Errorf("expected retry strategy %s, got %s", tt.retry, err.RetryStrategy())
			}
		})
	}
}

func TestErrorContext(t *testing.T) {
	ctx1 := make(ErrorContext)
	ctx1 = ctx1.Set("key1", "value1")
	ctx1 = ctx1.Set("shared", "original")
	ctx1 = ctx1.Set("sources", []string{"a.md", "b.md"})

	ctx2 := ErrorContext{}.Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	if v, _ := merged.GetString("key1"); v != "value1" {
		t.Errorf("expected key1=value1, got %s", v)
	}
	if v, _ := merged.GetString("shared"); v != "overridden" {
		t.Errorf("expected shared=overridden, got %s", v)
	}
	if v, ok := merged.GetStrings("sources"); !ok || len(v) != 2 {
		t.Errorf("expected two sources, got %v", v)
	}
	if _, ok := merged.Get("missing"); ok {
		t.Error("expected missing key to not exist")
	}
}
