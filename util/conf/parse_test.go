package conf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ec2switch/ec2switch/util/conf"
)

type target struct {
	Region     string `conf:"region"`
	InstanceID string `conf:"instance_id"`
}

type testConfig struct {
	LogLevel string `conf:"log_level"`
	Target   target `conf:"target"`
}

var testDefaults = conf.Combine(
	conf.DefaultConfig{"log_level": "info"},
	conf.MergeDefaults("target", conf.DefaultConfig{
		"region":      "us-east-1",
		"instance_id": "i-default",
	}),
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "EC2SWITCHTEST__",
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "us-east-1", cfg.Target.Region)
	assert.Equal(t, "i-default", cfg.Target.InstanceID)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("EC2SWITCHTEST__TARGET__REGION", "eu-central-1")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "EC2SWITCHTEST__",
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.Target.Region)
	assert.Equal(t, "i-default", cfg.Target.InstanceID)
}

func TestParse_JSONFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(name, []byte(`{"target": {"instance_id": "i-json"}}`), 0o600)
	require.NoError(t, err)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "EC2SWITCHTEST__",
		FileName:  name,
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "i-json", cfg.Target.InstanceID)
	assert.Equal(t, "us-east-1", cfg.Target.Region)
}

func TestParse_DotenvFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "switch.env")
	err := os.WriteFile(name, []byte("TARGET__INSTANCE_ID=i-dotenv\nLOG_LEVEL=debug\n"), 0o600)
	require.NoError(t, err)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "EC2SWITCHTEST__",
		FileName:  name,
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "i-dotenv", cfg.Target.InstanceID)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("ns", map[string]any{"a": 1}, map[string]any{"b": 2})

	assert.Equal(t, map[string]any{"ns.a": 1, "ns.b": 2}, merged)
}

func TestConfigContext(t *testing.T) {
	_, err := conf.GetConfigFromContext[testConfig](context.Background())
	assert.ErrorIs(t, err, conf.ErrNoConfigInContext)

	ctx := conf.ContextWithConfig(context.Background(), testConfig{LogLevel: "warn"})

	cfg, err := conf.GetConfigFromContext[testConfig](ctx)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = conf.GetConfigFromContext[target](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfigInContext)
}
