package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a route registered on the shared mux.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

// HttpHandlerResult adds a HttpHandler to the `handlers` value group.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// NewServeMux registers all handlers on a new mux.
func NewServeMux(handlers []*HttpHandler) *http.ServeMux {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}
