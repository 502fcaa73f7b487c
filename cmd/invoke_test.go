package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ec2switch/ec2switch/instance"
	"github.com/ec2switch/ec2switch/internal/shell"
	"github.com/ec2switch/ec2switch/models"
)

type mockSwitch struct {
	mock.Mock
}

func (m *mockSwitch) Start(ctx context.Context, event json.RawMessage) (instance.Response, error) {
	return m.Handle(ctx, models.ActionStart, event)
}

func (m *mockSwitch) Stop(ctx context.Context, event json.RawMessage) (instance.Response, error) {
	return m.Handle(ctx, models.ActionStop, event)
}

func (m *mockSwitch) Handle(ctx context.Context, action models.Action, event json.RawMessage) (instance.Response, error) {
	args := m.Called(ctx, action, event)
	return args.Get(0).(instance.Response), args.Error(1)
}

func TestInvoke_Success(t *testing.T) {
	s := new(mockSwitch)
	s.On("Handle", mock.Anything, models.ActionStop, json.RawMessage(nil)).
		Return(instance.Response{StatusCode: http.StatusOK, Body: "EC2 instance stopped successfully!"}, nil).Once()

	var out bytes.Buffer
	err := invoke(context.Background(), s, models.ActionStop, &out)
	require.NoError(t, err)

	assert.JSONEq(t, `{"statusCode":200,"body":"EC2 instance stopped successfully!"}`, out.String())
	s.AssertExpectations(t)
}

func TestInvoke_Failure(t *testing.T) {
	callErr := errors.New("IncorrectInstanceState")

	s := new(mockSwitch)
	s.On("Handle", mock.Anything, models.ActionStart, mock.Anything).
		Return(instance.Response{}, callErr).Once()

	var out bytes.Buffer
	err := invoke(context.Background(), s, models.ActionStart, &out)

	assert.ErrorIs(t, err, callErr)
	assert.Empty(t, out.String())
	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRootApp_Commands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootApp.Commands {
		names[c.Name] = true
	}

	for _, name := range []string{"lambda", "serve", "run", "start", "stop"} {
		assert.True(t, names[name], name)
	}
}
