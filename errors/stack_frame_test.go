package errors_test

import (
	"strings"
	"testing"

	"github.com/thanhminhmr/go-notifier/errors"
)

func TestStackTrace(t *testing.T) {
	trace := errors.StackTrace(0)
	if len(trace) == 0 {
		t.Fatalf("expected non-empty stack trace")
	}
	for _, frame := range trace {
		if frame.Function == "" || frame.File == "" || frame.Line == 0 {
			t.Fatalf("expected function, file, and line populated, got %+v", frame)
		}
	}
	if !strings.HasSuffix(trace[0].Function, "/errors_test.TestStackTrace") {
		t.Fatalf("expected first function is this function, got %+v", trace[0])
	}
}

func TestStackFrameString(t *testing.T) {
	frame := errors.StackFrame{Function: "run", File: "/app/main.go", Line: 42}
	if frame.String() != "/app/main.go:42:in `run'" {
		t.Fatalf("unexpected rendering: %q", frame.String())
	}
}

func TestStackFramesStrings(t *testing.T) {
	trace := errors.StackTrace(0)
	lines := trace.Strings()
	if len(lines) != len(trace) {
		t.Fatalf("expected %d lines, got %d", len(trace), len(lines))
	}
	if lines := errors.StackFrames(nil).Strings(); lines != nil {
		t.Fatalf("expected nil for an empty trace, got %v", lines)
	}
}
