// Package logger builds the zap loggers shared by the server and dieticianctl
package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/config"
)

// NewProductionLogger returns a JSON logger writing at LOG_LEVEL
func NewProductionLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	return zapConfig.Build()
}

// Suggar provides the sugared logger injected in repositories, services and handlers
func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
