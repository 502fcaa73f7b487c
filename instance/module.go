package instance

import (
	"go.uber.org/fx"

	"github.com/ec2switch/ec2switch/internal/compute"
	"github.com/ec2switch/ec2switch/util/logging"
)

// Module provides the instance switch for the given config.
func Module(config Config) fx.Option {
	return fx.Module(
		"instance",

		// provide instance config
		fx.Supply(config),

		// rename logger for module
		logging.DecorateLogger("instance"),

		// provide the ec2 client factory
		fx.Provide(func() compute.ClientFactory {
			return compute.NewClient
		}),

		// provide switch
		fx.Provide(
			NewSwitch,
			func(s *Switch) Handler { return s },
		),
	)
}
