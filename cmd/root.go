package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/ec2switch/ec2switch/config"
	"github.com/ec2switch/ec2switch/internal/shell"
	"github.com/ec2switch/ec2switch/util/conf"
	"github.com/ec2switch/ec2switch/util/logging"
)

var (
	appName  = "ec2switch"
	appUsage = `Start or stop a single EC2 instance, from AWS Lambda,
a standalone http server or the command line.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a json or .env file.",
				EnvVars: []string{"CONFIG_FILE"},
			},
			// instance flags
			&cli.StringFlag{
				Name:     "region",
				Usage:    "the AWS region of the instance.",
				Aliases:  []string{"r"},
				Category: "instance",
				EnvVars:  []string{"INSTANCE_REGION"},
			},
			&cli.StringFlag{
				Name:     "instance-id",
				Usage:    "the id of the EC2 instance to switch.",
				Aliases:  []string{"i"},
				Category: "instance",
				EnvVars:  []string{"INSTANCE_ID"},
			},
			// http flags
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "require this key in the api-key header of http requests.",
				Category: "http",
				EnvVars:  []string{"AUTH_KEY"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := logging.NewLogger(appName, ctx.String("log-level"), ctx.String("log-format"))
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   config.CliMap,
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				Log:      log,
			})
			if err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli app and returns the process exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	if !shell.IsExitError(err) {
		sentry.CaptureException(err)
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	return shell.ExitCode(err)
}
