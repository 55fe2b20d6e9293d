package log

import (
	"github.com/rs/zerolog"
	"go.uber.org/dig"
	"go.uber.org/fx/fxevent"
)

// fxLogger is an event logger that logs fx events to Zerolog.
type fxLogger struct {
	*zerolog.Logger
}

// InitFxLogger returns the fx event logger instance for Zerolog.
func InitFxLogger(logger *zerolog.Logger) fxevent.Logger {
	return fxLogger{Logger: logger}
}

// LogEvent logs the given event to the provided Zerolog.
func (l fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.Error().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Err(dig.RootCause(e.Err)).
				Msg("OnStart hook failed")
		}
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.Error().
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Err(dig.RootCause(e.Err)).
				Msg("OnStop hook failed")
		}
	case *fxevent.Provided:
		if e.Err != nil {
			l.Error().
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				Err(dig.RootCause(e.Err)).
				Msg("Error encountered while applying options")
		} else {
			l.Trace().
				Str("constructor", e.ConstructorName).
				Strs("types", e.OutputTypeNames).
				Msg("Provided")
		}
	case *fxevent.Invoking:
		l.Trace().Str("function", e.FunctionName).Msg("Invoking")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.Error().
				Str("function", e.FunctionName).
				Err(dig.RootCause(e.Err)).
				Str("stack", e.Trace).
				Msg("Invoke failed")
		}
	case *fxevent.Stopping:
		l.Info().Stringer("signal", e.Signal).Msg("Received signal")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Stop failed")
		}
	case *fxevent.RollingBack:
		l.Error().Err(e.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Rollback failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Start failed")
		} else {
			l.Info().Msg("Started")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.Error().Err(dig.RootCause(e.Err)).Msg("Logger initialization failed")
		}
	}
}
