package instance

import "github.com/ec2switch/ec2switch/util/conf"

const (
	// DefaultRegion is the region the switched instance lives in.
	DefaultRegion = "us-east-1"

	// DefaultInstanceID is the instance switched when none is configured.
	DefaultInstanceID = "i-0015010ae14fa4fb1"
)

// Config identifies the instance to switch.
type Config struct {
	// Region is the AWS region of the instance.
	Region string `conf:"region"`

	// InstanceID is the EC2 instance identifier.
	InstanceID string `conf:"instance_id"`
}

// Defaults returns the default values for Config, keyed by conf tag.
func Defaults() conf.DefaultConfig {
	return conf.DefaultConfig{
		"region":      DefaultRegion,
		"instance_id": DefaultInstanceID,
	}
}
