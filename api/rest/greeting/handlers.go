package greeting

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// body served at the root path
const Message = "Hello from test.local!"

// Handler godoc
// @Summary Greeting
// @Description Returns a fixed plain text greeting
// @Tags greeting
// @Produce plain
// @Success 200 {string} string "Hello from test.local!"
// @Router / [get]
func Handler(c *gin.Context) {
	c.String(http.StatusOK, Message)
}
