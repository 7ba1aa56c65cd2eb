package store

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Colile1/alx-final-project/models"
)

func TestGenerateOnceAppendsOneReadingPerSensor(t *testing.T) {
	s := newTestStore(t)

	s.AddGarden("u1", models.AddGardenRequest{Name: "Patio"})
	s.AddGarden("u1", models.AddGardenRequest{Name: "Yard"})

	appended := s.GenerateOnce("u1")
	if appended != 8 {
		t.Fatalf("expected 4 readings per garden across 2 gardens, got %d", appended)
	}
	if got := len(s.Readings("u1", "")); got != 8 {
		t.Fatalf("expected 8 stored readings, got %d", got)
	}
}

func TestGenerateOnceWithoutGardens(t *testing.T) {
	s := newTestStore(t)
	if appended := s.GenerateOnce("u1"); appended != 0 {
		t.Fatalf("expected no readings without gardens, got %d", appended)
	}
}

func TestGenerateOnceEnforcesRetentionBound(t *testing.T) {
	s := newTestStore(t)

	garden, _ := s.AddGarden("u1", models.AddGardenRequest{Name: "Patio"})

	// 4 readings per pass against a bound of 200 for one garden.
	for i := 0; i < 60; i++ {
		s.GenerateOnce("u1")
	}

	readings := s.Readings("u1", "")
	if len(readings) != ReadingsPerGarden {
		t.Fatalf("expected retention at %d readings, got %d", ReadingsPerGarden, len(readings))
	}
	// Truncation drops oldest-first, so the newest pass survives intact.
	last := readings[len(readings)-1]
	if last.GardenID != garden.ID {
		t.Fatalf("unexpected garden on newest reading: %q", last.GardenID)
	}
}

func TestGenerateOnceTruncatesOldestFirst(t *testing.T) {
	s := newTestStore(t)

	garden, _ := s.AddGarden("u1", models.AddGardenRequest{Name: "Patio"})

	marker := models.SensorReading{ID: "marker-old", GardenID: garden.ID, SensorType: "pH", Timestamp: time.Now().Add(-time.Hour)}
	old := make([]models.SensorReading, 0, ReadingsPerGarden)
	old = append(old, marker)
	for i := 1; i < ReadingsPerGarden; i++ {
		old = append(old, models.SensorReading{ID: "filler", GardenID: garden.ID})
	}
	if err := s.gw.SaveReadings("u1", old); err != nil {
		t.Fatalf("seed readings: %v", err)
	}

	s.GenerateOnce("u1")

	for _, reading := range s.Readings("u1", "") {
		if reading.ID == "marker-old" {
			t.Fatalf("oldest reading survived truncation")
		}
	}
}

func TestStartCycleGeneratesOnTicks(t *testing.T) {
	s := newTestStore(t)

	tick := make(chan time.Time)
	var starts atomic.Int32
	s.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		starts.Add(1)
		return tick, func() {}
	}

	s.gw.SaveGardens("u1", []models.Garden{{ID: "g1", Name: "Patio", Sensors: []string{"pH", "temperature"}}})

	s.StartCycle("u1")
	// A second start for the same identity must not stack a second timer.
	s.StartCycle("u1")

	tick <- time.Now()
	tick <- time.Now()

	waitFor(t, func() bool { return len(s.Readings("u1", "")) == 4 })

	s.StopCycle("u1")
	if got := starts.Load(); got != 1 {
		t.Fatalf("expected a single ticker, got %d", got)
	}
}

func TestStopCycleHaltsGeneration(t *testing.T) {
	s := newTestStore(t)

	tick := make(chan time.Time, 1)
	stopped := make(chan struct{})
	s.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return tick, func() { close(stopped) }
	}

	s.gw.SaveGardens("u1", []models.Garden{{ID: "g1", Name: "Patio", Sensors: []string{"pH"}}})

	s.StartCycle("u1")
	s.StopCycle("u1")

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker was not released on stop")
	}

	// A stop for an identity with no cycle must be a no-op.
	s.StopCycle("u1")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}
