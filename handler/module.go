package handler

import (
	"go.uber.org/fx"

	"github.com/ec2switch/ec2switch/util/logging"
)

// Module provides the http routes of the instance switch.
func Module() fx.Option {
	return fx.Module("handler",
		logging.DecorateLogger("handler"),
		fx.Provide(NewActionHandler),
		fx.Provide(NewActionRoute),
		fx.Provide(NewHealthRoute),
	)
}
