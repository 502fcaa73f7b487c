package compute

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// Client is the subset of the EC2 API used to switch instances.
type Client interface {
	StartInstances(ctx context.Context, input *ec2.StartInstancesInput, opts ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, input *ec2.StopInstancesInput, opts ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

var _ Client = (*ec2.Client)(nil)

// ClientFactory creates a Client bound to the given region.
type ClientFactory func(ctx context.Context, region string) (Client, error)

// NewClient creates an EC2 client for region, using the ambient
// credentials of the environment (env vars, shared config, or the
// execution role when running on AWS Lambda).
func NewClient(ctx context.Context, region string) (Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return ec2.NewFromConfig(cfg), nil
}
