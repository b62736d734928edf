package config

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger.  "prod" gets JSON output at info
// level; every other environment gets the human-readable development
// encoder.  LOG_LEVEL overrides the level when it names a valid zap level.
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(env, "prod") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl := envStr("LOG_LEVEL", ""); lvl != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(l)
		}
	}
	return cfg.Build(zap.Fields(zap.String("env", env)))
}
