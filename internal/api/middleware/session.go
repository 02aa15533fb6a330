package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/internal/auth"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
)

// SessionAuth returns a Gin middleware that validates the session cookie and
// populates the request context with the authenticated user.
func SessionAuth(svc *auth.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeSessionInvalid,
				"message": "not authenticated",
			})
			return
		}

		user, sess, err := svc.Validate(c.Request.Context(), token)
		if err != nil {
			code := apperrors.CodeSessionInvalid
			msg := "invalid session"
			if appErr, ok := apperrors.IsAppError(err); ok {
				code = appErr.Code
				msg = appErr.Message
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    code,
				"message": msg,
			})
			return
		}

		// Populate context for downstream handlers.
		c.Set("user_id", user.ID)
		c.Set("username", user.Soeid)
		c.Set("role", user.Role)
		c.Set("session_id", sess.ID)
		c.Request = c.Request.WithContext(
			SetUserContext(c.Request.Context(), user.ID, user.Soeid, []string{user.Role}),
		)

		c.Next()
	}
}

// RequireAdmin returns a middleware that rejects non-admin users. It must run
// after SessionAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "FORBIDDEN",
				"message": "admin role required",
			})
			return
		}
		c.Next()
	}
}
