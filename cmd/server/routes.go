package main

import (
	"codeberg.org/testlocal/server/api/rest/greeting"
	"codeberg.org/testlocal/server/api/rest/health"
	"codeberg.org/testlocal/server/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(server.config.CORSAllowedOrigins))

	if server.rateLimit != nil {
		router.Use(server.rateLimit)
	}

	greeting.RegisterRoutes(router)
	health.RegisterRoutes(router)
}
