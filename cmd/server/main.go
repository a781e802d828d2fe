package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/testlocal/server/internal/config"
	"codeberg.org/testlocal/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// @title test.local fixture API
// @version 1.0
// @description Minimal HTTP fixture: a greeting at / and a health check at /health.

// @host localhost:3000

const shutdownTimeout = 10 * time.Second

func main() {
	// load configuration from environment (and .env when present)
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// ENVIRONMENT may have come from .env, so rebuild the logger
	logger.SetDefault(logger.New(cfg.Environment, os.Stdout))

	configureGin()

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// bind before serving so a busy port fails startup right away
	ln, err := srv.Listen()
	if err != nil {
		logger.Fatal("server failed to start", "error", err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil {
			logger.Fatal("server stopped unexpectedly", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// keeps gin's debug banner and route dump off stdout; the logger owns it
func configureGin() {
	gin.SetMode(gin.ReleaseMode)
}
