package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"miniblog/internal/pkg/jwtutil"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// Session resolves the session cookie into the current user identity.
// A missing, expired, or tampered cookie leaves the request anonymous.
func Session(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page before the
// handler runs.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == 0 {
			q := url.Values{"error": {"login required"}}
			c.Redirect(http.StatusSeeOther, "/login?"+q.Encode())
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) uint {
	idAny, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}
	id, ok := idAny.(uint)
	if !ok {
		return 0
	}
	return id
}

func CurrentUsername(c *gin.Context) string {
	nameAny, exists := c.Get(ContextUsernameKey)
	if !exists {
		return ""
	}
	name, _ := nameAny.(string)
	return name
}
