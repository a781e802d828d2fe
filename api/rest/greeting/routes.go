package greeting

import "github.com/gin-gonic/gin"

// registers the greeting on GET and HEAD /
func RegisterRoutes(router gin.IRoutes) {
	router.GET("/", Handler)
	router.HEAD("/", Handler)
}
