package main

import (
	"net/http"

	"codeberg.org/testlocal/server/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the HTTP server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server

	// per-IP limiter, nil when RATE_LIMIT is unset
	rateLimit gin.HandlerFunc
}
