// Package ibemock assembles and runs the mock booking backend.
package ibemock

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ots-platform/ibe-mock/internal/api"
	"github.com/ots-platform/ibe-mock/internal/config"
	"github.com/ots-platform/ibe-mock/internal/logger"
	"github.com/ots-platform/ibe-mock/internal/pricing"
	"github.com/ots-platform/ibe-mock/internal/services"
	"github.com/ots-platform/ibe-mock/internal/store"
)

// Run starts the mock HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("ibe-mock")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("default_currency", cfg.DefaultCurrency).
		Bool("debug", cfg.Debug).
		Msg("IBE mock starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New()
	engine := pricing.NewEngine(st, cfg.DefaultCurrency)
	svc := services.New(st, engine, cfg.DefaultCurrency, cfg.Debug)
	router := api.NewRouter(api.NewHandler(svc, st))

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
