package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"travelog/pkg/utils"
)

// Origins outside the configured allow-list are still accepted when they are
// local-network addresses (the desktop shell and devices on the same LAN) or
// tunnel hostnames used to reach the app remotely.
var (
	localNetOriginRe = regexp.MustCompile(
		`^https?://(localhost|127\.0\.0\.1|192\.168\.\d{1,3}\.\d{1,3}|10\.\d{1,3}\.\d{1,3}\.\d{1,3})(:\d+)?$`)
	tunnelOriginRe = regexp.MustCompile(
		`^https://[a-z0-9.-]+\.(ngrok-free\.app|trycloudflare\.com|loca\.lt)$`)
)

func CORSMiddleware(cfg *utils.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORSAllowedOrigins))
	for _, origin := range cfg.CORSAllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowed[origin] || localNetOriginRe.MatchString(origin) || tunnelOriginRe.MatchString(origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func CSPMiddleware(cfg *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", cfg.CSPPolicy)
		c.Next()
	}
}
