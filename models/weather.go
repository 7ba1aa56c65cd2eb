package models

import "time"

// WeatherSnapshot is a cached mock forecast keyed by location string.
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Temperature int       `json:"temperature"`
	Humidity    int       `json:"humidity"`
	Condition   string    `json:"condition"`
	WindSpeed   int       `json:"windSpeed"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Notification is a user-facing outcome message pushed to connected clients.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Level   string `json:"level"` // "info" or "error"
}
