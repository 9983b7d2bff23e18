package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quillpress/app/config"
	"quillpress/app/routes"

	"github.com/sirupsen/logrus"
)

// RunAppServer starts the blog service and blocks until SIGINT or SIGTERM.
func RunAppServer(cfg *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, cfg, logger)
}

// Serve connects the store, serves the blog on cfg.HTTPAddr and shuts down
// gracefully once ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	st, err := openStore(cfg.DBPath, cfg.DBInMemory, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.WithError(err).Error("failed to close store")
		}
	}()

	router, err := routes.SetupMVCRoutes(st, routes.Options{
		Logger:   logger,
		Location: cfg.Location(),
	})
	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}
	srv := routes.NewServer(cfg.HTTPAddr, router)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	logger.WithFields(logrus.Fields{
		"addr":      ln.Addr().String(),
		"db_path":   cfg.DBPath,
		"in_memory": cfg.DBInMemory,
	}).Info("blog service started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	logger.Info("blog service stopped")
	return nil
}
