// Package main is the entry point for the ShockGlobe viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/config"
	"github.com/Faultbox/shockglobe/internal/logger"
	"github.com/Faultbox/shockglobe/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

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
		fmt.Printf("config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run owns every deferred cleanup so they execute before os.Exit.
func run(cfg *config.Config) int {
	defer logger.Sync()

	logger.Info("=== ShockGlobe ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}

	code := 0
	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		code = 1
	}
	if err := v.Close(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
		code = 1
	}

	if code == 0 {
		logger.Info("viewer closed normally")
	}
	return code
}
