package cliflags_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ec2switch/ec2switch/util/cliflags"
)

func runWith(t *testing.T, args []string, cb func(string) string) map[string]any {
	var result map[string]any

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "region", Aliases: []string{"r"}, EnvVars: []string{"CLIFLAGS_TEST_REGION"}},
			&cli.StringFlag{Name: "instance-id", Value: "i-default"},
			&cli.IntFlag{Name: "port"},
			&cli.BoolFlag{Name: "h2c"},
		},
		Action: func(ctx *cli.Context) error {
			mp, err := cliflags.Provider(ctx, ".", cb).Read()
			result = mp
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))

	return result
}

func TestProvider_SetFlagsOnly(t *testing.T) {
	mp := runWith(t, []string{"--port", "9000", "--h2c"}, nil)

	assert.Equal(t, map[string]any{"port": 9000, "h2c": true}, mp)
}

func TestProvider_Alias(t *testing.T) {
	mp := runWith(t, []string{"-r", "eu-west-1"}, nil)

	assert.Equal(t, map[string]any{"region": "eu-west-1"}, mp)
}

func TestProvider_EnvVar(t *testing.T) {
	t.Setenv("CLIFLAGS_TEST_REGION", "ap-south-1")

	mp := runWith(t, nil, nil)

	assert.Equal(t, map[string]any{"region": "ap-south-1"}, mp)
}

func TestProvider_NestedKeys(t *testing.T) {
	cb := func(s string) string {
		return "instance." + strings.ReplaceAll(s, "-", "_")
	}

	mp := runWith(t, []string{"--instance-id", "i-123", "--region", "us-west-2"}, cb)

	assert.Equal(t, map[string]any{
		"instance": map[string]any{
			"instance_id": "i-123",
			"region":      "us-west-2",
		},
	}, mp)
}

func TestProvider_ReadBytes(t *testing.T) {
	_, err := (&cliflags.CLIFlags{}).ReadBytes()
	assert.Error(t, err)
}
