package health

import "github.com/gin-gonic/gin"

// registers the health check on GET and HEAD /health
func RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", Handler)
	router.HEAD("/health", Handler)
}
