package obs

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestLoggerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("primecount", &buf)

	logger.Info("run start", Int("workers", 10), Int64("limit", 100000), Duration("cost", 2*time.Second))

	line := buf.String()
	for _, want := range []string{
		"level=INFO",
		"service=primecount",
		`msg="run start"`,
		"workers=10",
		"limit=100000",
		"cost=2s",
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}

func TestLoggerWarn(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("primecount", &buf).Warn("count may vary", Str("strategy", "unsafe-cursor"))

	line := buf.String()
	for _, want := range []string{"level=WARN", `msg="count may vary"`, "strategy=unsafe-cursor"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}

func TestLoggerErrorWithAppError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("primecount", &buf)

	err := Wrap("fixed-range", "count", "trace-1", errors.New("boom"))
	logger.Error(err)

	line := buf.String()
	for _, want := range []string{"level=ERROR", "op=fixed-range", "kind=count", "err_trace=trace-1"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap("op", "kind", "", nil) != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	base := errors.New("timeout")
	err := fmt.Errorf("run: %w", Wrap("atomic", "count", "", base))
	if !errors.Is(err, base) {
		t.Fatalf("errors.Is lost the cause: %v", err)
	}
	if !IsKind(err, "count") {
		t.Fatalf("IsKind(count) = false for %v", err)
	}
	if IsKind(err, "construct") {
		t.Fatalf("IsKind(construct) = true for %v", err)
	}
	app, ok := AsAppError(err)
	if !ok || app.Op != "atomic" {
		t.Fatalf("AsAppError = %+v, %v", app, ok)
	}
	if got, want := app.Error(), "atomic: count: timeout"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
