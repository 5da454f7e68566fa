// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logger is the request logging middleware.
func Logger() gin.HandlerFunc {
	return gin.Logger()
}

// Recovery turns panics into 500s instead of killing the process.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}

// CORS gates browser requests against a fixed origin allow-list. A matching
// request origin is echoed back, anything else gets the first configured
// origin. OPTIONS short-circuits with 200 and an empty body before any route
// logic runs.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := ""
		if len(allowedOrigins) > 0 {
			allowed = allowedOrigins[0]
		}
		origin := c.Request.Header.Get("Origin")
		for _, o := range allowedOrigins {
			if o == origin {
				allowed = origin
				break
			}
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowed)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// Setup installs the middleware stack.
func Setup(r *gin.Engine, allowedOrigins []string) {
	r.Use(Logger())
	r.Use(Recovery())
	r.Use(CORS(allowedOrigins))
}
