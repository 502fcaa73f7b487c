package instance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ec2switch/ec2switch/internal/compute"
	"github.com/ec2switch/ec2switch/models"
)

var ErrInvalidAction = errors.New("invalid action")

// Handler starts or stops the configured instance.
type Handler interface {
	Start(ctx context.Context, event json.RawMessage) (Response, error)
	Stop(ctx context.Context, event json.RawMessage) (Response, error)
	Handle(ctx context.Context, action models.Action, event json.RawMessage) (Response, error)
}

// SwitchParams defines the dependencies for the switch.
type SwitchParams struct {
	fx.In

	// Config identifies the instance to switch
	Config Config

	// NewClient creates the EC2 client used for a single invocation
	NewClient compute.ClientFactory

	// Log is the logger to use for the switch
	Log *zap.Logger
}

// Switch issues a single start or stop request per invocation. Each
// invocation constructs its own client and keeps no state between calls.
type Switch struct {
	config    Config
	newClient compute.ClientFactory
	log       *zap.Logger
}

var _ Handler = (*Switch)(nil)

func NewSwitch(params SwitchParams) *Switch {
	return &Switch{
		config:    params.Config,
		newClient: params.NewClient,
		log:       params.Log,
	}
}

// Start requests the instance to transition to running. The event
// is not consulted.
func (s *Switch) Start(ctx context.Context, _ json.RawMessage) (Response, error) {
	log := s.logger(models.ActionStart)

	log.Info("starting EC2 instance process")

	client, err := s.newClient(ctx, s.config.Region)
	if err != nil {
		return Response{}, fmt.Errorf("creating ec2 client: %w", err)
	}

	_, err = client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{s.config.InstanceID},
	})
	if err != nil {
		return Response{}, fmt.Errorf("starting instance %s: %w", s.config.InstanceID, err)
	}

	log.Info("EC2 instance started successfully")

	return newResponse(bodyStarted), nil
}

// Stop requests the instance to transition to stopped. The event
// is not consulted.
func (s *Switch) Stop(ctx context.Context, _ json.RawMessage) (Response, error) {
	log := s.logger(models.ActionStop)

	log.Info("stopping EC2 instance process")

	client, err := s.newClient(ctx, s.config.Region)
	if err != nil {
		return Response{}, fmt.Errorf("creating ec2 client: %w", err)
	}

	_, err = client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{s.config.InstanceID},
	})
	if err != nil {
		return Response{}, fmt.Errorf("stopping instance %s: %w", s.config.InstanceID, err)
	}

	log.Info("EC2 instance stopped successfully")

	return newResponse(bodyStopped), nil
}

// Handle dispatches to Start or Stop depending on action.
func (s *Switch) Handle(
	ctx context.Context,
	action models.Action,
	event json.RawMessage,
) (Response, error) {
	switch action {
	case models.ActionStart:
		return s.Start(ctx, event)
	case models.ActionStop:
		return s.Stop(ctx, event)
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

func (s *Switch) logger(action models.Action) *zap.Logger {
	return s.log.With(
		zap.Stringer("action", action),
		zap.String("region", s.config.Region),
		zap.String("instance_id", s.config.InstanceID),
	)
}
