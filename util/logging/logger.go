package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// NewLogger builds the root logger. Unknown levels fall back to info,
// every format other than development yields json output.
func NewLogger(app, level, format string) (*zap.Logger, error) {
	var config zap.Config
	if format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.InitialFields = map[string]any{
		"app": app,
	}

	config.Level = parseLevel(level)

	return config.Build()
}

func parseLevel(level string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(level); err == nil && level != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
