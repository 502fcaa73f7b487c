package config

import (
	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/util/conf"
)

// AuthConfig protects the http surface with a shared key.
type AuthConfig struct {
	// Key is compared against the api-key request header. An empty
	// key disables the check.
	Key string `conf:"key"`
}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// ConfigFile is an optional json or dotenv file to load
	ConfigFile string `conf:"config_file"`

	// Instance identifies the instance to switch
	Instance instance.Config `conf:"instance"`

	// Auth is the http authentication configuration
	Auth AuthConfig `conf:"auth"`
}

// DefaultConfig holds the defaults for Config as flat, dotted keys.
var DefaultConfig = conf.Combine(
	conf.DefaultConfig{
		"log_format": "production",
	},
	conf.MergeDefaults("instance", instance.Defaults()),
)

// CliMap maps global cli flags onto their nested config keys.
var CliMap = map[string]string{
	"region":      "instance.region",
	"instance-id": "instance.instance_id",
	"api-key":     "auth.key",
	"config":      "config_file",
}
