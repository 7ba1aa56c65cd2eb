package controllers

import (
	"net/http"

	"github.com/Colile1/alx-final-project/auth"
	"github.com/Colile1/alx-final-project/config"
	"github.com/Colile1/alx-final-project/storage"
	"github.com/Colile1/alx-final-project/store"

	"github.com/gin-gonic/gin"
)

// Handler carries every dependency the route layer needs. Nothing here is a
// package-level global; main builds one Handler and registers its methods.
type Handler struct {
	Store   *store.Store
	Auth    *auth.Provider
	Gateway *storage.Gateway
	Hub     *Hub
	Cfg     config.Config
}

// identity pulls the authenticated identity id set by the auth middleware.
func identity(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}
