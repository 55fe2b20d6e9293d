package errors

import (
	"runtime"
	"strconv"
)

// StackFrame is one captured call-stack entry.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame in the conventional single-line form
// "file:line:in `function'", the same shape the backtrace parser accepts as
// its native grammar.
func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":in `" + f.Function + "'"
}

type StackFrames []StackFrame

// Strings renders every frame, one line per frame.
func (s StackFrames) Strings() []string {
	if len(s) == 0 {
		return nil
	}
	lines := make([]string, 0, len(s))
	for _, frame := range s {
		lines = append(lines, frame.String())
	}
	return lines
}

// StackTrace captures the current call stack, skipping the given number of
// frames above the caller. The capture depth is bounded.
func StackTrace(skip int) StackFrames {
	const depth = 32
	var programCounters [depth]uintptr
	counters := runtime.Callers(2+skip, programCounters[:])
	if counters == 0 {
		return nil
	}
	frames := runtime.CallersFrames(programCounters[:counters])
	stack := make(StackFrames, 0, counters)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}
