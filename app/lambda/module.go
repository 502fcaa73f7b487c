package lambda

import (
	"go.uber.org/fx"

	"github.com/ec2switch/ec2switch/handler"
	"github.com/ec2switch/ec2switch/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide http routes for proxied events
		handler.Module(),
		// provide lambda handler
		fx.Provide(NewLifecycleHandler),
		// invoke lambda handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
