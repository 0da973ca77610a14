package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"discord-webhook-relay/config"
	"discord-webhook-relay/routes"
)

const (
	apiPrefix       = "/api"
	shutdownTimeout = 10 * time.Second
)

// run refuses to bind a port unless the webhook URL is configured.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rc, err := routes.NewRestController(cfg)
	if err != nil {
		return fmt.Errorf("creating rest controller: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	}

	log.Infof("Webhook listener running on %s", ln.Addr())
	log.Infof("Waiting for POST requests to %s%s", apiPrefix, routes.TriggerPath)

	return serve(ctx, ln, rc.SetUpRoutes(apiPrefix))
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}
