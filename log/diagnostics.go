package log

import (
	"github.com/thanhminhmr/go-notifier/backtrace"

	"github.com/rs/zerolog"
)

// type check
var _ backtrace.DiagnosticSink = Diagnostics{}

// Diagnostics adapts a zerolog logger to the parser's diagnostic sink.
// Unparsable backtrace lines are worth a warning but never more.
type Diagnostics struct {
	Logger *zerolog.Logger
}

func (d Diagnostics) Log(message string) {
	d.Logger.Warn().Msg(message)
}
