//go:build !no_zerolog

package notice

import "github.com/rs/zerolog"

func (e Error) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", e.Type).Str("message", e.Message)
	if len(e.Backtrace) != 0 {
		event.Array("backtrace", e.Backtrace)
	}
}

func (e Errors) MarshalZerologArray(array *zerolog.Array) {
	for _, element := range e {
		array.Object(element)
	}
}

func (n Notice) MarshalZerologObject(event *zerolog.Event) {
	event.Array("errors", n.Errors)
}
