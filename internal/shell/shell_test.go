package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/ec2switch/ec2switch/internal/shell"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, shell.ExitCode(nil))
	assert.Equal(t, 3, shell.ExitCode(shell.NewExitError(3)))
	assert.Equal(t, 2, shell.ExitCode(fmt.Errorf("wrapped: %w", shell.NewExitError(2))))
	assert.Equal(t, 1, shell.ExitCode(errors.New("boom")))
}

func TestShell_Run_Shutdown(t *testing.T) {
	sh := shell.New(zaptest.NewLogger(t))

	err := sh.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
		lc.Append(fx.StartHook(func() error {
			return sd.Shutdown()
		}))
	}))

	assert.NoError(t, err)
}

func TestShell_Run_ExitCode(t *testing.T) {
	sh := shell.New(zaptest.NewLogger(t))

	err := sh.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
		lc.Append(fx.StartHook(func() error {
			return sd.Shutdown(fx.ExitCode(4))
		}))
	}))

	assert.Equal(t, 4, shell.ExitCode(err))
}

func TestShell_Run_StartFailure(t *testing.T) {
	sh := shell.New(zaptest.NewLogger(t))

	err := sh.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.StartHook(func() error {
			return errors.New("listen: address in use")
		}))
	}))

	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_Run_ProvidesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	sh := shell.New(zaptest.NewLogger(t))

	var got any
	err := sh.Run(ctx, fx.Invoke(func(c context.Context, lc fx.Lifecycle, sd fx.Shutdowner) {
		got = c.Value(key{})
		lc.Append(fx.StartHook(func() error {
			return sd.Shutdown()
		}))
	}))

	assert.NoError(t, err)
	assert.Equal(t, "value", got)
}
