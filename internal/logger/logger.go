package logger

import (
	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/config"
)

// New builds the process logger: production encoding in production,
// human-readable development output everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
