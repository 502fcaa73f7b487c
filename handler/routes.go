package handler

import (
	"net/http"

	"github.com/ec2switch/ec2switch/internal/server"
)

func NewActionRoute(handler *ActionHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/{action}", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("/health", http.HandlerFunc(HealthHandler))
}
