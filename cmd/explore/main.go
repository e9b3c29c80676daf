// Package main is the entry point for the first-person hex explorer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hexfield/hexplore/internal/config"
	"github.com/hexfield/hexplore/internal/game"
	"github.com/hexfield/hexplore/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hexplore ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	g.Run()

	logger.Info("session closed normally")
}
