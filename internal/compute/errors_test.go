package compute_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/ec2switch/ec2switch/internal/compute"
)

func TestParseError_ClientFault(t *testing.T) {
	err := fmt.Errorf("starting instance: %w", &smithy.GenericAPIError{
		Code:    "InvalidInstanceID.NotFound",
		Message: "The instance ID 'i-0015010ae14fa4fb1' does not exist",
		Fault:   smithy.FaultClient,
	})

	status, code, message := compute.ParseError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "InvalidInstanceID.NotFound", code)
	assert.Contains(t, message, "does not exist")
}

func TestParseError_ServerFault(t *testing.T) {
	err := &smithy.GenericAPIError{
		Code:    "InternalError",
		Message: "internal error",
		Fault:   smithy.FaultServer,
	}

	status, code, _ := compute.ParseError(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "InternalError", code)
}

func TestParseError_Throttling(t *testing.T) {
	err := &smithy.GenericAPIError{
		Code:    "ThrottlingException",
		Message: "Rate exceeded",
		Fault:   smithy.FaultClient,
	}

	status, _, _ := compute.ParseError(err)

	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestParseError_OperationError(t *testing.T) {
	err := &smithy.OperationError{
		ServiceID:     "EC2",
		OperationName: "StopInstances",
		Err:           errors.New("dial tcp: no route to host"),
	}

	status, code, message := compute.ParseError(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failure", code)
	assert.Equal(t, "dial tcp: no route to host", message)
}

func TestParseError_Generic(t *testing.T) {
	status, code, message := compute.ParseError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failure", code)
	assert.Equal(t, "boom", message)
}
