package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/logging"
	"github.com/adergachev/recipevault/internal/server/auth"
)

const (
	ctxUserIDKey = "userID"
	ctxTokenKey  = "sessionToken"
)

// AuthRequired verifies the bearer token and stores the session's user id
// and the raw token in the request context. Rejection reasons are logged at
// debug level only; the response is always the same generic 401.
func AuthRequired(authority *auth.Authority, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeUnauthorized(c)
			return
		}
		token := strings.TrimPrefix(header, common.BearerPrefix)

		sess, err := authority.Verify(token)
		if err != nil {
			log.Debug(c.Request.Context(), "token rejected", "reason", err.Error())
			writeUnauthorized(c)
			return
		}

		c.Set(ctxUserIDKey, sess.UserID)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// RequestLogger emits one structured line per request, including the user id
// when an auth middleware downstream resolved one.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
			"user_id", c.GetString(ctxUserIDKey),
		)
	}
}

// CORS applies the configured allow-origins and answers preflight requests.
func CORS(allowOrigins []string) gin.HandlerFunc {
	any := false
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, origin := range allowOrigins {
		if origin == "*" {
			any = true
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case any:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "":
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
