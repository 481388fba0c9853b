package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Set LOG_DEV=1 for the
// human-readable development encoder.
func New() (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)

	if os.Getenv("LOG_DEV") == "1" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return log, nil
}
