package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/goodjob/internal/api/middleware"
	"github.com/timmy/goodjob/internal/config"
)

// AuthHandler handles login and session checks against the single
// shared secret.
type AuthHandler struct {
	cfg config.AuthConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/login. On success it sets the session cookie
// for 30 days (configurable).
func (h *AuthHandler) Login(c *gin.Context) {
	if h.cfg.AdminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ADMIN_PASSWORD not configured"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Password != h.cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, middleware.SessionToken(h.cfg.AdminPassword),
		h.cfg.SessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Check handles GET /api/auth. It reports whether the current session
// cookie is valid; always authenticated when the gate is disabled.
func (h *AuthHandler) Check(c *gin.Context) {
	if h.cfg.AdminPassword == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	token, err := c.Cookie(middleware.AuthCookieName)
	if err == nil && middleware.ValidToken(token, h.cfg.AdminPassword) {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
}
