//go:build !no_zerolog

package backtrace

import "github.com/rs/zerolog"

func (f Frame) MarshalZerologObject(event *zerolog.Event) {
	if f.File != "" {
		event.Str("file", f.File)
	}
	if f.Line != 0 {
		event.Int("line", f.Line)
	}
	if f.Function != "" {
		event.Str("function", f.Function)
	}
	if len(f.Code) != 0 {
		event.Array("code", f.Code)
	}
}

func (f Frames) MarshalZerologArray(array *zerolog.Array) {
	for _, frame := range f {
		array.Object(frame)
	}
}

func (e Excerpt) MarshalZerologArray(array *zerolog.Array) {
	for _, line := range e {
		array.Object(line)
	}
}

func (l ExcerptLine) MarshalZerologObject(event *zerolog.Event) {
	event.Int("number", l.Number).Str("source", l.Source)
}
