package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tracklite.io/tracklite/internal/pkg/errors"
)

type loginRequest struct {
	Soeid    string `json:"soeid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID          string `json:"id"`
	Soeid       string `json:"soeid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Login handles POST /auth/login. On success the session token is set as an
// HTTP-only cookie.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "soeid and password are required"))
		return
	}

	result, err := s.authSvc.Login(c.Request.Context(), req.Soeid, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	maxAge := int(s.sessionCfg.Lifetime.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.sessionCfg.Cookie, result.Token, maxAge, "/", "",
		s.sessionCfg.Secure, s.sessionCfg.HttpOnly)

	c.JSON(http.StatusOK, gin.H{
		"user": userResponse{
			ID:          result.User.ID,
			Soeid:       result.User.Soeid,
			Email:       result.User.Email,
			DisplayName: result.User.DisplayName,
			Role:        result.User.Role,
		},
		"expires_at": result.ExpiresAt,
	})
}

// Logout handles POST /auth/logout. The session row is revoked and the
// cookie cleared.
func (s *Server) Logout(c *gin.Context) {
	if sessionID := c.GetString("session_id"); sessionID != "" {
		if err := s.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
			_ = c.Error(err)
			return
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.sessionCfg.Cookie, "", -1, "/", "", s.sessionCfg.Secure, s.sessionCfg.HttpOnly)
	c.Status(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (s *Server) Me(c *gin.Context) {
	u, err := s.client.User.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeSessionInvalid, "user not found"))
		return
	}
	c.JSON(http.StatusOK, userResponse{
		ID:          u.ID,
		Soeid:       u.Soeid,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	})
}
