package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

type HttpServer struct {
	ctx    context.Context
	addr   string
	server *http.Server
	log    *zap.Logger
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	mux := NewServeMux(params.Handlers)

	var handler http.Handler = mux
	if params.Config.H2c {
		handler = h2c.NewHandler(mux, &http2.Server{})
	}

	server := &http.Server{
		Addr:              params.Config.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &HttpServer{
		ctx:    params.Context,
		addr:   params.Config.Addr(),
		server: server,
		log:    params.Logger,
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle, sd fx.Shutdowner) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := server.Listen(ctx)
			if err != nil {
				return err
			}

			go func() {
				if err := server.Serve(listener); err != nil {
					sd.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// Listen opens the tcp listener for the server.
func (s *HttpServer) Listen(ctx context.Context) (net.Listener, error) {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.Error("failed to listen", zap.String("address", s.addr), zap.Error(err))
		return nil, err
	}

	return listener, nil
}

// Serve blocks serving requests on listener until the server is shut down.
func (s *HttpServer) Serve(listener net.Listener) error {
	s.log.Info("listening", zap.String("address", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("failed to serve", zap.Error(err))
		return err
	}

	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("failed to shutdown", zap.Error(err))
		return err
	}

	return nil
}
