package compute

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
)

// ParseError classifies an error returned by the EC2 API into a http
// status code, an error code and a human readable message.
func ParseError(err error) (statusCode int, code, message string) {
	statusCode = http.StatusInternalServerError
	code = "Failure"
	message = err.Error()

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
		message = apiErr.ErrorMessage()
		statusCode = statusFromFault(apiErr.ErrorFault())
	} else {
		var opErr *smithy.OperationError
		if errors.As(err, &opErr) {
			message = opErr.Unwrap().Error()
		}
	}

	if strings.Contains(code, "Throttling") || strings.Contains(message, "Throttling") {
		statusCode = http.StatusTooManyRequests
	}

	return statusCode, code, message
}

func statusFromFault(fault smithy.ErrorFault) int {
	switch fault {
	case smithy.FaultClient:
		return http.StatusBadRequest
	case smithy.FaultServer:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
