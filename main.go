package main

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ec2switch/ec2switch/cmd"
	"github.com/ec2switch/ec2switch/util"
)

var Version string
var Buildtime string
var Commit string

func main() {
	err := setupSentry()
	if err != nil {
		log.Fatalf("sentry init failed: %s", err)
	}

	appVersion := "local"
	if Version != "" {
		appVersion = Version
	}

	appBuildtime, _ := time.Parse(time.RFC3339, Buildtime)

	code := cmd.Execute(cmd.ExecuteParams{
		Version:  appVersion,
		Compiled: appBuildtime,
	})

	// flush before exiting, deferred calls do not run on os.Exit
	flushSentry()

	os.Exit(code)
}

func setupSentry() error {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return nil
	}

	environment := os.Getenv("SENTRY_ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Debug:            util.Truthy(os.Getenv("SENTRY_DEBUG")),
		TracesSampleRate: 1.0,
		EnableTracing:    true,
		Environment:      environment,
		Release:          Commit,
	})
}

func flushSentry() {
	sentry.Flush(2 * time.Second)
}
