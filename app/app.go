package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ec2switch/ec2switch/config"
	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/internal/shell"
	"github.com/ec2switch/ec2switch/util/conf"
	"github.com/ec2switch/ec2switch/util/logging"
)

// New creates the application shell, using the logger and config
// carried on ctx.
func New(ctx context.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(cfg)), nil
}

// SharedModule provides the dependencies common to all entrypoints.
func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide the instance switch
		instance.Module(cfg.Instance),
	)
}

// NewSwitch builds the instance switch without starting an fx
// application, for one-shot invocations.
func NewSwitch(log *zap.Logger, cfg config.Config) (instance.Handler, error) {
	var handler instance.Handler

	err := fx.New(
		fx.NopLogger,
		fx.Supply(log),
		SharedModule(cfg),
		fx.Populate(&handler),
	).Err()
	if err != nil {
		return nil, err
	}

	return handler, nil
}
