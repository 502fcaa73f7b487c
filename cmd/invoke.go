package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ec2switch/ec2switch/app"
	"github.com/ec2switch/ec2switch/config"
	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/models"
	"github.com/ec2switch/ec2switch/util/conf"
	"github.com/ec2switch/ec2switch/util/logging"
)

var (
	startCmd = &cli.Command{
		Name:   "start",
		Usage:  "Start the configured instance once and print the result.",
		Action: invokeAction(models.ActionStart),
	}
	stopCmd = &cli.Command{
		Name:   "stop",
		Usage:  "Stop the configured instance once and print the result.",
		Action: invokeAction(models.ActionStop),
	}
)

func invokeAction(action models.Action) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		log, err := logging.LoggerFromContext(ctx.Context)
		if err != nil {
			return err
		}

		cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
		if err != nil {
			return err
		}

		handler, err := app.NewSwitch(log, cfg)
		if err != nil {
			return err
		}

		return invoke(ctx.Context, handler, action, ctx.App.Writer)
	}
}

// invoke runs a single action and writes the response record as json.
// Failures are returned unchanged, so the process exits non-zero.
func invoke(ctx context.Context, handler instance.Handler, action models.Action, w io.Writer) error {
	response, err := handler.Handle(ctx, action, nil)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, startCmd, stopCmd)
}
