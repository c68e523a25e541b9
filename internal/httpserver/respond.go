package httpserver

import (
	"net/http"
	"strings"

	identitysvc "bitefinder/internal/service/identity"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

// sessionMiddleware resolves the bearer token and stores the session in
// the request context.
func sessionMiddleware(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		sess, err := svc.LookupSession(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentSession(c *gin.Context) *identitysvc.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*identitysvc.Session)
	return sess
}
