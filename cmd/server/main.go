// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/swimdq/internal/config"
	"github.com/festy23/swimdq/internal/database/database"
	"github.com/festy23/swimdq/internal/database/migrate"
	"github.com/festy23/swimdq/internal/health"
	"github.com/festy23/swimdq/internal/infraction"
	"github.com/festy23/swimdq/internal/meet/links"
	meetRouter "github.com/festy23/swimdq/internal/meet/router"
	"github.com/festy23/swimdq/internal/middleware"
	submissionRouter "github.com/festy23/swimdq/internal/submission/router"
	"github.com/festy23/swimdq/pkg/logger"
)

func main() {
	config.LoadDotEnv()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		_ = sugar.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, sugar *zap.SugaredLogger) error {
	db, err := database.New(sugar)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, sugar); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(sugar), middleware.Recovery(sugar))

	sessionStore := middleware.NewSessionStore(cfg.Session)

	health.RegisterRoutes(r, db, sugar)
	meetRouter.RegisterRoutes(r, db, links.New(cfg.ApplicationURL), sugar)
	submissionRouter.RegisterRoutes(r, db, infraction.Default(), middleware.Sessions(cfg.Session, sessionStore), sugar)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		sugar.Infow("server listening", "addr", server.Addr, "application_url", cfg.ApplicationURL)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-quit:
		sugar.Infow("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
		return server.Close()
	}

	sugar.Infow("server stopped")
	return nil
}
