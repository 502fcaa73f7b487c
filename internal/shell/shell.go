package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs a long-lived fx application until it receives a
// shutdown signal.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts the application built from the shell options and the
// given options, and blocks until it is signalled to stop. A non-zero
// exit code is reported as an *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	defer s.log.Sync()

	// the app context outlives start, and is cancelled once run returns
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	fxApp := s.createFxApp(appCtx, options...)

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()

	if err := fxApp.Start(startCtx); err != nil {
		s.log.Error("failed to start", zap.Error(err))
		return NewExitError(1)
	}

	sig := <-fxApp.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), fxApp.StopTimeout())
	defer cancelStop()

	if err := fxApp.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	if sig.ExitCode != 0 {
		return NewExitError(sig.ExitCode)
	}

	return nil
}

func (s *Shell) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(s.log),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),

		// shell options, shared by all entrypoints
		fx.Options(s.options...),

		// run options
		fx.Options(options...),
	)
}
