// Package record defines the uniform error representation consumed by the
// backtrace parser and the notice builder. The integration layer bridges the
// host's native errors into Record values before handing them to this module;
// nothing downstream inspects live error values again.
package record

import (
	"fmt"
	"strings"

	"github.com/thanhminhmr/go-notifier/errors"
)

// Runtime tags where an error originated. The bridging layer decides the tag
// at the boundary; the parser never guesses it from loaded packages or type
// names.
type Runtime uint8

const (
	RuntimeUnknown Runtime = iota
	// RuntimeEmbeddedVM marks errors raised inside an embedded
	// managed-language virtual machine, whose frames carry the function
	// before the file.
	RuntimeEmbeddedVM
	// RuntimeDatabase marks errors reported by a database engine.
	RuntimeDatabase
	// RuntimeTranspiled marks errors raised by a transpiled-script runtime.
	RuntimeTranspiled
)

// Record is a single error with its raw backtrace and an optional cause.
// Cause links may form very deep or even cyclic chains; consumers bound
// their own traversal instead of trusting the chain to terminate.
type Record struct {
	Type      string
	Message   string
	Backtrace []string
	Runtime   Runtime
	Cause     *Record
}

// maxBridgeDepth bounds how many wrapped errors FromError materializes. The
// notice builder reports fewer; the extra records keep cause context for
// classification.
const maxBridgeDepth = 8

// FromError bridges a native error chain into a Record chain. Cause links
// follow Unwrap (the first error of a joined error is taken as the cause);
// runtime tags are left unset and may be filled by the caller afterwards.
// Returns nil for a nil error.
func FromError(err error) *Record {
	var root, last *Record
	for depth := 0; err != nil && depth < maxBridgeDepth; depth++ {
		current := &Record{
			Type:      typeName(err),
			Message:   message(err),
			Backtrace: backtraceLines(err),
		}
		if last == nil {
			root = current
		} else {
			last.Cause = current
		}
		last = current
		err = unwrap(err)
	}
	return root
}

func typeName(err error) string {
	if typed, ok := err.(interface{ GetType() string }); ok {
		return typed.GetType()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func message(err error) string {
	if typed, ok := err.(interface{ GetMessage() string }); ok {
		if described := typed.GetMessage(); described != "" {
			return described
		}
	}
	return err.Error()
}

func backtraceLines(err error) []string {
	switch traced := err.(type) {
	case interface{ Backtrace() []string }:
		return traced.Backtrace()
	case interface{ StackTrace() string }:
		return SplitLines(traced.StackTrace())
	case interface{ GetStackTrace() errors.StackFrames }:
		return traced.GetStackTrace().Strings()
	}
	return nil
}

func unwrap(err error) error {
	switch wrapped := err.(type) {
	case interface{ GetCause() []error }:
		if cause := wrapped.GetCause(); len(cause) > 0 {
			return cause[0]
		}
	case interface{ Unwrap() error }:
		return wrapped.Unwrap()
	case interface{ Unwrap() []error }:
		if unwrapped := wrapped.Unwrap(); len(unwrapped) > 0 {
			return unwrapped[0]
		}
	}
	return nil
}

// SplitLines splits a multi-line trace into its raw lines, dropping blank
// ones. Returns nil for an empty trace.
func SplitLines(trace string) []string {
	if trace == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(trace, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
