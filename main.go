package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"discord-webhook-relay/config"
	"discord-webhook-relay/logger"
)

var log = logger.New("server")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		os.Exit(1)
	}
	if err := logger.Setup(cfg.LogLevel); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Errorf("FATAL ERROR: %v", err)
		stop()
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
