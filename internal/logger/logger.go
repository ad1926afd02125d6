package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces zap's global logger. Call sites use zap.L().
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
