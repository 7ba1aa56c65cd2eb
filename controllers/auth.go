package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Colile1/alx-final-project/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// Signup registers a new account and signs it in.
func (h *Handler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	session, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists with this email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	h.startSession(session)

	token, err := h.issueToken(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": session})
}

// Login authenticates by email and returns a JWT token plus the session.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, models.ErrInvalidCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	h.startSession(session)

	token, err := h.issueToken(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": session})
}

// Logout tears the session down: the generation cycle stops, dependent
// caches clear and the session record is removed.
func (h *Handler) Logout(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	h.Store.StopCycle(userID)
	h.Store.ClearWeather(userID)
	if err := h.Auth.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated identity.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	session, err := h.Auth.Lookup(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// startSession runs the post-login lifecycle: idempotent seeding, then the
// generation cycle while gardens exist.
func (h *Handler) startSession(session models.Session) {
	h.Store.EnsureSeeded(session.ID)
	if len(h.Store.Gardens(session.ID)) > 0 {
		h.Store.StartCycle(session.ID)
	}
}

func (h *Handler) issueToken(identityID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": identityID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(h.Cfg.JWTSecret)
}
