package standalone

import (
	"go.uber.org/fx"

	"github.com/ec2switch/ec2switch/handler"
	"github.com/ec2switch/ec2switch/internal/server"
	"github.com/ec2switch/ec2switch/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
