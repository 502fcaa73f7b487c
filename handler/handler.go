package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ec2switch/ec2switch/config"
	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/internal/compute"
	"github.com/ec2switch/ec2switch/models"
)

var (
	ErrInvalidMethod = errors.New("invalid method")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidBody   = errors.New("failed to read body")
)

var wellKnownErrors = map[error]int{
	ErrInvalidMethod:          http.StatusMethodNotAllowed,
	ErrUnauthorized:           http.StatusUnauthorized,
	ErrInvalidBody:            http.StatusBadRequest,
	instance.ErrInvalidAction: http.StatusNotFound,
}

type ActionHandlerParams struct {
	fx.In

	Handler instance.Handler
	Config  config.Config
	Log     *zap.Logger
}

func NewActionHandler(params ActionHandlerParams) *ActionHandler {
	return &ActionHandler{
		handler: params.Handler,
		auth:    params.Config.Auth,
		log:     params.Log,
	}
}

// ActionHandler exposes the instance switch over http. The action is
// taken from the `action` path value.
type ActionHandler struct {
	handler instance.Handler
	auth    config.AuthConfig
	log     *zap.Logger
}

func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	if h.auth.Key != "" && r.Header.Get("api-key") != h.auth.Key {
		log.Debug("unauthorized request")
		writeError(w, ErrUnauthorized)
		return
	}

	if r.Method != http.MethodPost {
		log.Debug("invalid method")
		writeError(w, ErrInvalidMethod)
		return
	}

	action, ok := models.ParseAction(r.PathValue("action"))
	if !ok {
		log.Debug("invalid action", zap.String("action", r.PathValue("action")))
		writeError(w, instance.ErrInvalidAction)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		writeError(w, ErrInvalidBody)
		return
	}

	var event json.RawMessage
	if len(body) > 0 {
		event = body
	}

	response, err := h.handler.Handle(r.Context(), action, event)
	if err != nil {
		log.Error("failed to switch instance", zap.Stringer("action", action), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, response.StatusCode, response)
}

// HealthHandler reports that the process is able to serve requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type responseError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	for known, status := range wellKnownErrors {
		if errors.Is(err, known) {
			writeJSON(w, status, struct {
				Error responseError `json:"error"`
			}{
				Error: responseError{Message: err.Error()},
			})
			return
		}
	}

	status, code, message := compute.ParseError(err)

	writeJSON(w, status, struct {
		Error responseError `json:"error"`
	}{
		Error: responseError{Message: message, Code: code},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
