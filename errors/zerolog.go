//go:build !no_zerolog

package errors

import "github.com/rs/zerolog"

func (e String) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", string(e))
}

func (e fullError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", e.String)
	switch len(e.Cause) {
	case 0: // skip
	case 1:
		event.AnErr("cause", e.Cause[0])
	default:
		event.Errs("cause", e.Cause)
	}
	if e.StackTrace != nil {
		event.Array("stack_trace", e.StackTrace)
	}
}

func (f StackFrame) MarshalZerologObject(event *zerolog.Event) {
	event.Str("function", f.Function).Str("file", f.File).Int("line", f.Line)
}

func (s StackFrames) MarshalZerologArray(array *zerolog.Array) {
	for _, frame := range s {
		array.Object(frame)
	}
}
