package controllers

import (
	"errors"
	"net/http"

	"github.com/Colile1/alx-final-project/models"

	"github.com/gin-gonic/gin"
)

// ListGardens returns the identity's gardens.
func (h *Handler) ListGardens(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	gardens := h.Store.Gardens(userID)
	if gardens == nil {
		gardens = []models.Garden{}
	}
	c.JSON(http.StatusOK, gardens)
}

// CreateGarden creates a garden from an AddGardenRequest.
func (h *Handler) CreateGarden(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.AddGardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Garden name is required"})
		return
	}

	garden, err := h.Store.AddGarden(userID, req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Garden name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create garden"})
		return
	}
	c.JSON(http.StatusCreated, garden)
}

// UpdateGarden patches a garden.
func (h *Handler) UpdateGarden(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.UpdateGardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	garden, err := h.Store.UpdateGarden(userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update garden"})
		return
	}
	c.JSON(http.StatusOK, garden)
}

// DeleteGarden removes a garden and cascades to its devices and readings.
func (h *Handler) DeleteGarden(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteGarden(userID, c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete garden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Garden and all associated data have been removed"})
}

// AddPlant appends a plant to one garden.
func (h *Handler) AddPlant(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.AddPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plant name is required"})
		return
	}

	plant, err := h.Store.AddPlant(userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add plant"})
		return
	}
	c.JSON(http.StatusCreated, plant)
}

// UpdatePlant patches a plant inside one garden.
func (h *Handler) UpdatePlant(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	plant, err := h.Store.UpdatePlant(userID, c.Param("id"), c.Param("plant_id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plant"})
		return
	}
	c.JSON(http.StatusOK, plant)
}

// DeletePlant removes a plant; deleting a plant that does not exist succeeds.
func (h *Handler) DeletePlant(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Store.DeletePlant(userID, c.Param("id"), c.Param("plant_id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Garden not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plant removed"})
}
