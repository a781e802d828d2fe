package middleware

import (
	"fmt"
	"strings"

	"codeberg.org/testlocal/server/internal/errors"
	"codeberg.org/testlocal/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// paths that are never rate limited
var rateLimitExemptPaths = []string{
	"/health",
}

// returns a per-IP rate limiting middleware for a formatted rate such as "100-M"
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit: %w", err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	limit := mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Debug("rate limit reached",
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			errors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter failed", err)
		}),
	)

	return func(c *gin.Context) {
		if isRateLimitExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		limit(c)
	}, nil
}

func isRateLimitExempt(path string) bool {
	for _, p := range rateLimitExemptPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}
