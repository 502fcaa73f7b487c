package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/internal/server"
	"github.com/ec2switch/ec2switch/models"
)

// LambdaHandlerParams represents the parameters required for
// the Lambda handler.
type LambdaHandlerParams struct {
	fx.In

	// Config is the configuration for the Lambda handler.
	Config Config

	// Switch handles direct invocations.
	Switch instance.Handler

	// Handlers is a slice of HTTP handlers grouped together.
	Handlers []*server.HttpHandler `group:"handlers"`

	// Context is the context for the Lambda handler.
	Context context.Context

	// Logger is the logger for the Lambda handler.
	Logger *zap.Logger
}

type LambdaHandler struct {
	config   Config
	ctx      context.Context
	cancel   context.CancelFunc
	swtch    instance.Handler
	handlers []*server.HttpHandler
	log      *zap.Logger
}

// NewLambdaHandler creates a new instance of LambdaHandler
// with the given parameters.
func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	config := params.Config
	if action, ok := models.ParseAction(config.Action.String()); ok {
		config.Action = action
	}

	return &LambdaHandler{
		config:   config,
		ctx:      ctx,
		cancel:   cancel,
		swtch:    params.Switch,
		handlers: params.Handlers,
		log:      params.Logger,
	}
}

// NewLifecycleHandler creates a new instance of LambdaHandler
// with the given parameters and attaches lifecycle hooks to
// start and stop the handler.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return handler.Start()
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

// Start starts the Lambda handler in a new goroutine. An error
// is returned if the handler fails to start.
func (s *LambdaHandler) Start() error {
	handler, err := s.Function()
	if err != nil {
		return err
	}

	s.log.Debug("using lambda event proxy", zap.Stringer("proxy_source", s.config.ProxySource))

	go lambda.StartWithOptions(handler, lambda.WithContext(s.ctx))

	return nil
}

// Shutdown cancels the execution of the LambdaHandler.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// Invoke handles a direct invocation. The event is passed through
// unchanged and errors are returned to the Lambda runtime as is.
func (s *LambdaHandler) Invoke(ctx context.Context, event json.RawMessage) (instance.Response, error) {
	return s.swtch.Handle(ctx, s.config.Action, event)
}

// Function returns the function passed to the Lambda runtime,
// based on the configured ProxySource.
func (s *LambdaHandler) Function() (any, error) {
	switch s.config.ProxySource {
	case ProxySourceDirect, "":
		if _, ok := models.ParseAction(s.config.Action.String()); !ok {
			return nil, fmt.Errorf("%w: %q", instance.ErrInvalidAction, s.config.Action)
		}
		return s.Invoke, nil
	case ProxySourceApiGatewayV1:
		return httpadapter.New(s.mux()).ProxyWithContext, nil
	case ProxySourceApiGatewayV2:
		return httpadapter.NewV2(s.mux()).ProxyWithContext, nil
	case ProxySourceAlb:
		return httpadapter.NewALB(s.mux()).ProxyWithContext, nil
	default:
		return nil, fmt.Errorf("invalid proxy source: %s", s.config.ProxySource)
	}
}

func (s *LambdaHandler) mux() http.Handler {
	return server.NewServeMux(s.handlers)
}
