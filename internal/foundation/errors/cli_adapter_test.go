package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", ValidationError("collision").Build(), 2},
		{"not found error", NotFoundError("missing").Build(), 3},
		{"config error", ConfigError("bad pattern").Build(), 7},
		{"build error", BuildError("phase failed").Build(), 11},
		{"internal error", InternalError("bug").Build(), 10},
		{"wrapped config error", fmt.Errorf("plugin: %w", ConfigError("bad pattern").Build()), 7},
		{"unclassified error", &customError{msg: "unknown error"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	collision := ValidationError("multiple files would map to 'intro/index.html': 010--intro.md, 020--intro.md").Build()

	if got := quiet.FormatError(collision); got != "Error: multiple files would map to 'intro/index.html': 010--intro.md, 020--intro.md" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(collision); !strings.HasPrefix(got, "[validation:fatal]") {
		t.Errorf("verbose FormatError() = %q", got)
	}
	if got := quiet.FormatError(BuildError("nav phase").Build()); got != "Error: build: nav phase" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := quiet.FormatError(&customError{msg: "boom"}); got != "Error: boom" {
		t.Errorf("unclassified FormatError() = %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("nil FormatError() = %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(true, logger)
	adapter.stderr = &stderr

	var code int
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ConfigError("invalid regex pattern '['").WithContext("pattern", "[").Build())

	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
	if !strings.Contains(stderr.String(), "invalid regex pattern") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(logs.String(), "category=config") || !strings.Contains(logs.String(), "pattern=[") {
		t.Errorf("log output missing attributes: %q", logs.String())
	}
}
