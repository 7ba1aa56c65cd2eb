package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Colile1/alx-final-project/models"
)

func TestConcurrentAddGardenKeepsBothWrites(t *testing.T) {
	s := newTestStore(t)

	for attempt := 0; attempt < 50; attempt++ {
		identityID := fmt.Sprintf("u%d", attempt)

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if _, err := s.AddGarden(identityID, models.AddGardenRequest{Name: fmt.Sprintf("Garden %d", n)}); err != nil {
					t.Errorf("add garden: %v", err)
				}
			}(i)
		}
		wg.Wait()

		if got := len(s.Gardens(identityID)); got != 2 {
			t.Fatalf("attempt %d: expected 2 gardens, got %d (lost update)", attempt, got)
		}
	}
}

func TestConcurrentCycleAndCascadeDelete(t *testing.T) {
	s := newTestStore(t)

	for attempt := 0; attempt < 30; attempt++ {
		identityID := fmt.Sprintf("u%d", attempt)
		garden, err := s.AddGarden(identityID, models.AddGardenRequest{Name: "Patio"})
		if err != nil {
			t.Fatalf("add garden: %v", err)
		}
		s.GenerateOnce(identityID)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.GenerateOnce(identityID)
		}()
		go func() {
			defer wg.Done()
			if err := s.DeleteGarden(identityID, garden.ID); err != nil {
				t.Errorf("delete garden: %v", err)
			}
		}()
		wg.Wait()

		// Whichever order the tick and the delete ran in, the cascade must
		// hold: no reading may still reference the deleted garden.
		for _, reading := range s.Readings(identityID, "") {
			if reading.GardenID == garden.ID {
				t.Fatalf("attempt %d: reading %s survived the cascade", attempt, reading.ID)
			}
		}
	}
}

func TestConcurrentDeviceCommands(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := s.AddDevice("u1", models.AddDeviceRequest{Name: fmt.Sprintf("Moisture Sensor %d", n), Type: "sensor", GardenID: "g1"}); err != nil {
				t.Errorf("add device: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(s.Devices("u1")); got != 10 {
		t.Fatalf("expected 10 devices, got %d (lost update)", got)
	}
}
