package utils

import (
	"math"
	"math/rand"
	"time"

	"github.com/Colile1/alx-final-project/models"

	"github.com/google/uuid"
)

// SensorRange is the fixed value range and unit for one sensor type.
type SensorRange struct {
	Min  float64
	Max  float64
	Unit string
}

// SensorRanges enumerates every supported sensor type.
var SensorRanges = map[string]SensorRange{
	"soilMoisture":   {Min: 20, Max: 80, Unit: "%"},
	"temperature":    {Min: 18, Max: 32, Unit: "°C"},
	"humidity":       {Min: 40, Max: 90, Unit: "%"},
	"lightIntensity": {Min: 200, Max: 2000, Unit: "lux"},
	"pH":             {Min: 5.5, Max: 7.5, Unit: "pH"},
	"nutrients":      {Min: 10, Max: 100, Unit: "ppm"},
}

// DefaultSensors is the four-type set assigned to every new garden.
var DefaultSensors = []string{"soilMoisture", "temperature", "humidity", "lightIntensity"}

// GenerateReading produces one synthetic reading for the given garden and
// sensor type. The value is drawn uniformly from the type's range and rounded
// to one decimal place; status is warning when the value sits in the bottom
// 20% of the range. Unknown types yield ErrUnsupportedSensorType.
func GenerateReading(gardenID, sensorType string) (models.SensorReading, error) {
	r, ok := SensorRanges[sensorType]
	if !ok {
		return models.SensorReading{}, models.ErrUnsupportedSensorType
	}

	value := math.Round((rand.Float64()*(r.Max-r.Min)+r.Min)*10) / 10

	status := models.ReadingNormal
	if value <= r.Min+0.2*(r.Max-r.Min) {
		status = models.ReadingWarning
	}

	return models.SensorReading{
		ID:         uuid.NewString(),
		GardenID:   gardenID,
		SensorType: sensorType,
		Value:      value,
		Unit:       r.Unit,
		Timestamp:  time.Now(),
		Status:     status,
	}, nil
}

var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy"}

// MockWeather produces a synthetic forecast for a location.
func MockWeather(location string) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Location:    location,
		Temperature: rand.Intn(16) + 15, // 15-30
		Humidity:    rand.Intn(31) + 50, // 50-80
		Condition:   weatherConditions[rand.Intn(len(weatherConditions))],
		WindSpeed:   rand.Intn(21) + 5, // 5-25
		LastUpdated: time.Now(),
	}
}
