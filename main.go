package main

import (
	"log"

	"github.com/Colile1/alx-final-project/auth"
	"github.com/Colile1/alx-final-project/config"
	"github.com/Colile1/alx-final-project/controllers"
	"github.com/Colile1/alx-final-project/middlewares"
	"github.com/Colile1/alx-final-project/storage"
	"github.com/Colile1/alx-final-project/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gateway, err := storage.Open(cfg)
	if err != nil {
		log.Fatal("Failed to open storage: ", err)
	}
	defer gateway.Close()

	hub := controllers.NewHub()
	domainStore := store.New(gateway, hub)
	defer domainStore.StopAllCycles()

	h := &controllers.Handler{
		Store:   domainStore,
		Auth:    auth.New(gateway),
		Gateway: gateway,
		Hub:     hub,
		Cfg:     cfg,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/theme", h.GetTheme)
	r.PUT("/theme", h.SetTheme)

	// Protected routes using auth middleware
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	protected.GET("/ws", h.HandleWebSocket)
	protected.POST("/logout", h.Logout)
	protected.GET("/profile", h.GetProfile)

	protected.GET("/gardens", h.ListGardens)
	protected.POST("/gardens", h.CreateGarden)
	protected.PUT("/gardens/:id", h.UpdateGarden)
	protected.DELETE("/gardens/:id", h.DeleteGarden)
	protected.POST("/gardens/:id/plants", h.AddPlant)
	protected.PUT("/gardens/:id/plants/:plant_id", h.UpdatePlant)
	protected.DELETE("/gardens/:id/plants/:plant_id", h.DeletePlant)

	protected.GET("/devices", h.ListDevices)
	protected.POST("/devices", h.CreateDevice)
	protected.PUT("/devices/:id", h.UpdateDevice)
	protected.DELETE("/devices/:id", h.DeleteDevice)

	protected.GET("/readings", h.ListReadings)
	protected.GET("/analytics/:garden_id", h.GetAnalytics)
	protected.GET("/analytics/:garden_id/recent", h.GetRecentReadings)
	protected.GET("/weather", h.GetWeather)
	protected.GET("/export", h.ExportData)
	protected.POST("/import", h.ImportData)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
