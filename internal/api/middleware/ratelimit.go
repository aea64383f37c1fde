// internal/api/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

func RateLimitMiddleware(rl *ratelimit.RateLimiter, key string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := rl.Allow(c.Request.Context(), fmt.Sprintf("%s:%s", key, c.ClientIP()), limit, window)
		if err != nil {
			Abort(c, apperr.Internal(err))
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", res.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", res.ResetAt.Unix()))

		if !res.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(time.Until(res.ResetAt).Seconds())+1))
			Abort(c, apperr.New(apperr.TooManyRequests))
			return
		}

		c.Next()
	}
}

// AuthRateLimit guards signup, login and refresh.
func AuthRateLimit(rl *ratelimit.RateLimiter, perMinute int) gin.HandlerFunc {
	return ConfigurableRateLimit(rl, "auth", perMinute, time.Minute)
}

// SharedTripRateLimit guards anonymous shared-trip reads.
func SharedTripRateLimit(rl *ratelimit.RateLimiter, perMinute int) gin.HandlerFunc {
	return ConfigurableRateLimit(rl, "shared", perMinute, time.Minute)
}

// PlaceSearchRateLimit caps outbound place searches.
func PlaceSearchRateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return ConfigurableRateLimit(rl, "place-search", constants.PlaceSearchLimit, time.Minute)
}

// ConfigurableRateLimit skips limiting when limit is not positive.
func ConfigurableRateLimit(rl *ratelimit.RateLimiter, endpoint string, limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return RateLimitMiddleware(rl, fmt.Sprintf("ratelimit:endpoint:%s", endpoint), limit, window)
}
