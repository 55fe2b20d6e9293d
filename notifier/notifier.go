// Package notifier is the composition root: it bridges raised errors into
// records, builds the notice for the unwound cause chain, and hands it to
// the transport.
package notifier

import (
	"context"

	"github.com/thanhminhmr/go-notifier/backtrace"
	"github.com/thanhminhmr/go-notifier/configuration"
	"github.com/thanhminhmr/go-notifier/hunk"
	"github.com/thanhminhmr/go-notifier/log"
	"github.com/thanhminhmr/go-notifier/notice"
	"github.com/thanhminhmr/go-notifier/record"

	"github.com/rs/zerolog"
)

type Config struct {
	CodeHunksEnabled bool   `env:"NOTIFIER_CODE_HUNKS"`
	ProjectRoot      string `env:"NOTIFIER_PROJECT_ROOT"`
}

func init() {
	configuration.SetDefault("NOTIFIER_CODE_HUNKS", "true")
}

// Transport delivers an assembled notice. sender.Sender is the production
// implementation.
type Transport interface {
	Send(ctx context.Context, assembled *notice.Notice) error
}

// NewSettings builds the parser settings from configuration, wiring the
// zerolog diagnostic sink and a shared file-backed hunk source.
func NewSettings(logger *zerolog.Logger, config *Config) *backtrace.Settings {
	return &backtrace.Settings{
		CodeHunksEnabled: config.CodeHunksEnabled,
		ProjectRoot:      config.ProjectRoot,
		Diagnostics:      log.Diagnostics{Logger: logger},
		Hunks:            hunk.NewFileSource(),
	}
}

type Notifier struct {
	logger    *zerolog.Logger
	settings  *backtrace.Settings
	transport Transport
}

func New(logger *zerolog.Logger, settings *backtrace.Settings, transport Transport) *Notifier {
	return &Notifier{
		logger:    logger,
		settings:  settings,
		transport: transport,
	}
}

// Notify reports err and its cause chain. A nil error is a no-op. The only
// failure surfaced is the transport's; everything on the way to the notice
// degrades to partial data instead of failing.
func (n *Notifier) Notify(ctx context.Context, err error) error {
	return n.NotifyRecord(ctx, record.FromError(err))
}

// NotifyRecord reports an already-bridged record. Integration layers that
// tag runtimes at the boundary use this directly.
func (n *Notifier) NotifyRecord(ctx context.Context, source *record.Record) error {
	if source == nil {
		return nil
	}
	assembled := notice.Build(n.settings, source)
	n.logger.Debug().Any("notice", assembled).Msg("Notice built")
	return n.transport.Send(ctx, assembled)
}
