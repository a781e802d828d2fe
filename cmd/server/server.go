package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/testlocal/server/internal/config"
	"codeberg.org/testlocal/server/internal/logger"
	"codeberg.org/testlocal/server/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// creates and configures a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	server := &Server{
		config: cfg,
		router: gin.New(),
	}

	// ClientIP keys the rate limiter, so forwarding headers only count from known proxies
	if err := server.router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if cfg.RateLimit != "" {
		limit, err := middleware.RateLimit(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}

		server.rateLimit = limit

		logger.Info("rate limiting enabled", "rate", cfg.RateLimit)
	}

	RegisterRoutes(server.router, server)

	server.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return server, nil
}

// binds the configured address
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}

	return ln, nil
}

// serves requests on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	port := listenerPort(ln)

	logger.Info(fmt.Sprintf("Test app listening at http://localhost:%d", port), "port", port)

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// returns the TCP port a listener is bound to
func listenerPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}
