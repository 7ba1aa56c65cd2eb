package models

import "time"

// Reading statuses.
const (
	ReadingNormal  = "normal"
	ReadingWarning = "warning"
)

// SensorReading is one synthetic observation. Readings are immutable once
// created; they are only appended and eventually pruned.
type SensorReading struct {
	ID         string    `json:"id"`
	GardenID   string    `json:"gardenId"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
}
