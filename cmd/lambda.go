package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ec2switch/ec2switch/app"
	"github.com/ec2switch/ec2switch/app/lambda"
	"github.com/ec2switch/ec2switch/util/conf"
	"github.com/ec2switch/ec2switch/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the AWS Lambda runtime interface
client, so the binary can be deployed as the handler of a
function using the provided.al2023 runtime.

With the DIRECT proxy source, every invocation performs the
configured handler action, start or stop, and returns the
result record. Deploy one function per action. With an http
proxy source, the action is taken from the request path.

The command blocks indefinitely, processing incoming events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "handler-action",
				Usage:    "the action performed by direct invocations. Options: start, stop.",
				Aliases:  []string{"a"},
				EnvVars:  []string{"HANDLER_ACTION"},
				Category: "lambda",
			},
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: DIRECT, API_GW_V1, API_GW_V2, ALB.",
				Value:    "DIRECT",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"lambda_proxy_source": lambda.ProxySourceDirect.String(),
		},
		Log: log,
		Cli: ctx,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler",
		zap.Stringer("proxy_source", cfg.ProxySource),
		zap.Stringer("action", cfg.Action),
	)

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
