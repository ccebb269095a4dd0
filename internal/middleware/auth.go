package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/types"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

const sessionKey = "session"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// Session describes the caller of the current request.
type Session struct {
	UserID   uint
	LoggedIn bool
}

// Sessions resolves the session token of every request. Requests without a
// valid token carry the zero Session.
func Sessions(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := Session{}
		if token := tokenFrom(c); token != "" {
			if claims, err := validator.ValidateToken(token); err == nil {
				session = Session{UserID: claims.UserID, LoggedIn: true}
			}
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by Sessions.
func SessionFrom(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Session{}
}

// RequireAuth aborts requests that are not logged in. Browsers are sent to
// the login page, API clients get 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c).LoggedIn {
			c.Next()
			return
		}
		if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	}
}

func tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
