package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimit creates a per-IP rate limiting middleware allowing limit
// requests per period. A limit of zero disables rate limiting. Requests to
// skipPaths are never counted.
func NewRateLimit(limit int64, period time.Duration, skipPaths ...string) gin.HandlerFunc {
	if limit <= 0 {
		return passThrough
	}

	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: period,
		Limit:  limit,
	})

	limited := mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.String(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		}),
	)

	return unless(newPathSet(skipPaths...), limited)
}
