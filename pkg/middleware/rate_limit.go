package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"

	"travelog/pkg/utils"
)

// RateLimiter enforces a fixed window per client address on the AI endpoints.
// Counters live in an expiring in-memory cache; the first request of a window
// starts the clock and the entry evaporates when the window ends.
type RateLimiter struct {
	store  *cache.Cache
	window int // seconds, reported as retry guidance
	max    int
}

func NewRateLimiter(cfg *utils.Config) *RateLimiter {
	return &RateLimiter{
		store:  cache.New(cfg.RateLimitWindow, 2*cfg.RateLimitWindow),
		window: int(cfg.RateLimitWindow.Seconds()),
		max:    cfg.RateLimitMax,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		count := 1
		if _, found := rl.store.Get(key); !found {
			rl.store.Set(key, 1, cache.DefaultExpiration)
		} else if n, err := rl.store.IncrementInt(key, 1); err == nil {
			count = n
		}

		if count > rl.max {
			c.Header("Retry-After", strconv.Itoa(rl.window))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":              "error",
				"code":                http.StatusTooManyRequests,
				"message":             "Demasiadas solicitudes a la IA, inténtalo más tarde",
				"retry_after_seconds": rl.window,
			})
			return
		}

		c.Next()
	}
}
