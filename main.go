// Command bmi-checker is an interactive console bot that checks BMI, estimates
// daily energy expenditure and builds a safety-bounded weight-loss calorie
// plan. Not medical advice.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"lg/bmi-checker-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build logger: %v\n", err)
		os.Exit(1)
	}

	sh := NewShell(os.Stdin, os.Stdout, cfg, logger)
	if err := sh.Run(); err != nil {
		logger.Error("shell stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
