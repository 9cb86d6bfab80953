// Command server exposes the training calculations over HTTP.
package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatalf("FATAL: Could not load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, newServer(cfg, logger), logger); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
}

// newServer wires the training service and routes onto an http.Server.
// Batch requests always report failed packages per item.
func newServer(cfg config.Config, logger *log.Logger) *http.Server {
	locale := cfg.Tracker.ParsedLocale()
	svc := service.NewTrainingService(service.Options{
		SkipFailed: true,
		Logger:     logger,
	})

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	api.SetupRoutes(router, api.NewTrainingHandler(svc, locale))

	logger.Printf("INFO: Default summary locale %q, batch failures reported per item", locale)

	return &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Printf("INFO: Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen on %s: %w", srv.Addr, err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Println("INFO: Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
