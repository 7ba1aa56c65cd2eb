package controllers

import (
	"errors"
	"net/http"

	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/store"

	"github.com/gin-gonic/gin"
)

// ListDevices returns the identity's devices with garden names resolved.
func (h *Handler) ListDevices(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	devices := h.Store.Devices(userID)
	if devices == nil {
		devices = []store.DeviceView{}
	}
	c.JSON(http.StatusOK, devices)
}

// CreateDevice connects a new device.
func (h *Handler) CreateDevice(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.AddDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device name, type and gardenId are required"})
		return
	}

	device, err := h.Store.AddDevice(userID, req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Device name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add device"})
		return
	}
	c.JSON(http.StatusCreated, device)
}

// UpdateDevice patches a device.
func (h *Handler) UpdateDevice(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	var req models.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	device, err := h.Store.UpdateDevice(userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update device"})
		return
	}
	c.JSON(http.StatusOK, device)
}

// DeleteDevice removes one device.
func (h *Handler) DeleteDevice(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteDevice(userID, c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete device"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device removed"})
}
