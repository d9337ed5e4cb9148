package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aegiswhistle/backend/internal/models"
)

const sessionKey = "session"

type loginRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the demo credentials for a role and returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role, username and password are required"})
		return
	}

	sess, err := h.Sessions.Login(models.Role(req.Role), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"title": h.Localizer.GetString(lang(c), "login_failed"),
			"error": err.Error(),
		})
		return
	}

	token, err := h.Sessions.IssueToken(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     sess.Role,
		"username": sess.Username,
	})
}

// RequireSession verifies the Bearer token and stores the session in the
// request context.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := h.sessionFromRequest(c)
		if !ok {
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRole additionally rejects sessions with a different role.
func (h *Handler) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := h.sessionFromRequest(c)
		if !ok {
			return
		}
		if sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// sessionFromRequest reads the token from the Authorization header, falling
// back to the token query parameter for WebSocket upgrades.
func (h *Handler) sessionFromRequest(c *gin.Context) (*models.Session, bool) {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[len("Bearer "):]
	} else {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return nil, false
	}

	sess, err := h.Sessions.VerifyToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return nil, false
	}
	return sess, true
}

// currentSession returns the session placed in the context by the middleware.
func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}
