package standalone

import "github.com/ec2switch/ec2switch/internal/server"

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}
