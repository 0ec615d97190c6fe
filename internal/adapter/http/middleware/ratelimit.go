package middleware

import (
	"strconv"
	"time"

	"traveling-message/internal/core/ports"
	"traveling-message/pkg/apperror"
	"traveling-message/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimiter enforces a per-client sliding-window quota. When the
// counter backend is unreachable the request is allowed through: a
// broken limiter must not take submissions down with it.
func RateLimiter(counter ports.AttemptCounter, limit int64, window time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := counter.Allow(c.Request.Context(), c.ClientIP(), limit, window)
		if err != nil {
			log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt, 10))

		if !res.Allowed {
			retryAfter := res.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
