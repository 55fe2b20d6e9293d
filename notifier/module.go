package notifier

import (
	"github.com/thanhminhmr/go-notifier/configuration"
	"github.com/thanhminhmr/go-notifier/log"
	"github.com/thanhminhmr/go-notifier/sender"

	"go.uber.org/fx"
)

// Module wires a ready-to-use Notifier into an fx application.
func Module() fx.Option {
	return fx.Options(
		fx.WithLogger(log.InitFxLogger),
		fx.Provide(
			log.ConsoleLogger,
			configuration.Loader(&Config{}),
			configuration.Loader(&sender.Config{}),
			NewSettings,
			sender.New,
			func(s *sender.Sender) Transport { return s },
			New,
		),
	)
}
