package store

import (
	"testing"
	"time"

	"github.com/Colile1/alx-final-project/models"
)

func TestSummaryAggregatesPerType(t *testing.T) {
	s := newTestStore(t)

	at := func(hour int) time.Time {
		return time.Date(2026, 8, 1, hour, 30, 0, 0, time.UTC)
	}
	s.gw.SaveReadings("u1", []models.SensorReading{
		{ID: "r1", GardenID: "g1", SensorType: "temperature", Value: 20, Unit: "°C", Timestamp: at(9)},
		{ID: "r2", GardenID: "g1", SensorType: "temperature", Value: 30, Unit: "°C", Timestamp: at(9)},
		{ID: "r3", GardenID: "g1", SensorType: "pH", Value: 6.5, Unit: "pH", Timestamp: at(10)},
		{ID: "r4", GardenID: "other", SensorType: "temperature", Value: 99, Unit: "°C", Timestamp: at(11)},
	})

	summary := s.Summary("u1", "g1")

	temp, ok := summary.Stats["temperature"]
	if !ok {
		t.Fatalf("missing temperature stats")
	}
	if temp.Count != 2 || temp.Average != 25 || temp.Min != 20 || temp.Max != 30 {
		t.Fatalf("unexpected temperature stats: %+v", temp)
	}
	if temp.Latest != 30 {
		t.Fatalf("latest should be the newest value, got %v", temp.Latest)
	}

	ph, ok := summary.Stats["pH"]
	if !ok || ph.Count != 1 || ph.Average != 6.5 {
		t.Fatalf("unexpected pH stats: %+v", ph)
	}

	if avg := summary.Hourly["temperature"][9]; avg != 25 {
		t.Fatalf("expected hourly average 25 at 09h, got %v", avg)
	}
	if summary.Stats["temperature"].Max == 99 {
		t.Fatalf("another garden's readings leaked into the summary")
	}
}

func TestRecentReturnsLastN(t *testing.T) {
	s := newTestStore(t)

	readings := make([]models.SensorReading, 0, 10)
	for i := 0; i < 10; i++ {
		readings = append(readings, models.SensorReading{ID: string(rune('a' + i)), GardenID: "g1"})
	}
	s.gw.SaveReadings("u1", readings)

	recent := s.Recent("u1", "g1", 3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(recent))
	}
	if recent[2].ID != "j" {
		t.Fatalf("expected newest reading last, got %q", recent[2].ID)
	}
}
