// Package main is the entry point for spinlight.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/app"
	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/mesh"
	"github.com/Faultbox/spinlight/internal/logger"
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

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	defer logger.Sync()

	logger.Info("=== spinlight ===", zap.String("backend", cfg.Window.Backend), zap.String("shape", cfg.Mesh.Shape))
	logger.Sugar.Debugf("Config: %+v", cfg)

	m, err := mesh.ByName(cfg.Mesh.Shape)
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		return 1
	}

	a, err := app.New(cfg, m)
	if err != nil {
		logger.Error("setup failed", zap.Error(err))
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Error("render loop failed", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
