package store

import (
	"math"

	"github.com/Colile1/alx-final-project/models"
)

// SensorStats aggregates one sensor type's readings for a garden.
type SensorStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Latest  float64 `json:"latest"`
	Unit    string  `json:"unit"`
}

// GardenSummary is the aggregate view behind the analytics charts: per-type
// statistics plus per-type hourly averages over the retained readings.
type GardenSummary struct {
	GardenID string                     `json:"gardenId"`
	Stats    map[string]SensorStats     `json:"stats"`
	Hourly   map[string]map[int]float64 `json:"hourly"`
}

// Summary computes per-type statistics and hour-of-day averages for one
// garden's readings.
func (s *Store) Summary(identityID, gardenID string) GardenSummary {
	summary := GardenSummary{
		GardenID: gardenID,
		Stats:    make(map[string]SensorStats),
		Hourly:   make(map[string]map[int]float64),
	}

	type hourAcc struct {
		sum   float64
		count int
	}
	hours := make(map[string]map[int]*hourAcc)
	sums := make(map[string]float64)

	for _, reading := range s.Readings(identityID, gardenID) {
		stats, seen := summary.Stats[reading.SensorType]
		if !seen {
			stats = SensorStats{Min: reading.Value, Max: reading.Value, Unit: reading.Unit}
		}
		stats.Count++
		stats.Latest = reading.Value
		if reading.Value < stats.Min {
			stats.Min = reading.Value
		}
		if reading.Value > stats.Max {
			stats.Max = reading.Value
		}
		summary.Stats[reading.SensorType] = stats
		sums[reading.SensorType] += reading.Value

		if hours[reading.SensorType] == nil {
			hours[reading.SensorType] = make(map[int]*hourAcc)
		}
		hour := reading.Timestamp.Hour()
		if hours[reading.SensorType][hour] == nil {
			hours[reading.SensorType][hour] = &hourAcc{}
		}
		hours[reading.SensorType][hour].sum += reading.Value
		hours[reading.SensorType][hour].count++
	}

	for sensorType, stats := range summary.Stats {
		stats.Average = round1(sums[sensorType] / float64(stats.Count))
		summary.Stats[sensorType] = stats
	}
	for sensorType, byHour := range hours {
		summary.Hourly[sensorType] = make(map[int]float64, len(byHour))
		for hour, acc := range byHour {
			summary.Hourly[sensorType][hour] = round1(acc.sum / float64(acc.count))
		}
	}
	return summary
}

// Recent returns the last n readings for a garden, newest last.
func (s *Store) Recent(identityID, gardenID string, n int) []models.SensorReading {
	readings := s.Readings(identityID, gardenID)
	if n > 0 && len(readings) > n {
		readings = readings[len(readings)-n:]
	}
	return readings
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
