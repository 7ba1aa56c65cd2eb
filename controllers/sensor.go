package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Colile1/alx-final-project/models"

	"github.com/gin-gonic/gin"
)

// ListReadings returns sensor readings, optionally filtered by garden_id.
func (h *Handler) ListReadings(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	readings := h.Store.Readings(userID, c.Query("garden_id"))
	if readings == nil {
		readings = []models.SensorReading{}
	}
	c.JSON(http.StatusOK, readings)
}

// GetAnalytics returns per-type statistics and hourly averages for one
// garden.
func (h *Handler) GetAnalytics(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Store.Summary(userID, c.Param("garden_id")))
}

// GetRecentReadings returns the last n readings for a garden (default 50).
func (h *Handler) GetRecentReadings(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	n, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	recent := h.Store.Recent(userID, c.Param("garden_id"), n)
	if recent == nil {
		recent = []models.SensorReading{}
	}
	c.JSON(http.StatusOK, recent)
}

// GetWeather returns the (possibly cached) forecast for a location.
func (h *Handler) GetWeather(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required"})
		return
	}
	c.JSON(http.StatusOK, h.Store.FetchWeather(userID, location))
}

// ExportData downloads the identity's dataset as JSON or CSV.
func (h *Handler) ExportData(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	session, err := h.Auth.Lookup(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	format := c.DefaultQuery("format", "json")
	out, err := h.Store.Export(userID, session.Email, format)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be json or csv"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	date := time.Now().Format("2006-01-02")
	switch format {
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=c_gardens_sensor_data_%s.csv", date))
		c.Data(http.StatusOK, "text/csv", out)
	default:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=c_gardens_export_%s.json", date))
		c.Data(http.StatusOK, "application/json", out)
	}
}

// ImportData merges an uploaded export document into the identity's
// collections. Accepts either a multipart "file" field or a raw JSON body.
func (h *Handler) ImportData(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var contents []byte
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read file"})
			return
		}
		defer f.Close()
		contents, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read file"})
			return
		}
	} else {
		var err error
		contents, err = io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
			return
		}
	}

	if err := h.Store.Import(userID, contents); err != nil {
		if errors.Is(err, models.ErrParse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to import data. Please check the file format."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

// GetTheme returns the global UI theme.
func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Gateway.Theme()})
}

// SetTheme stores the global UI theme.
func (h *Handler) SetTheme(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be dark or light"})
		return
	}
	if err := h.Gateway.SaveTheme(req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
