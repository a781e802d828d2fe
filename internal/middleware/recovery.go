package middleware

import (
	"fmt"
	"io"

	"codeberg.org/testlocal/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// returns a middleware that turns handler panics into 500 JSON responses,
// errors.InternalError does the logging so gin's own panic dump is discarded
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		errors.InternalError(c, "", fmt.Errorf("panic recovered: %v", recovered))
	})
}
