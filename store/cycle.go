package store

import (
	"log"
	"time"

	"github.com/Colile1/alx-final-project/utils"
)

// defaultTicker wraps time.Ticker behind the injectable factory shape so
// tests can drive ticks by hand.
func defaultTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// StartCycle launches the identity's periodic generation cycle. Calling it
// for an identity whose cycle is already running is a no-op, so repeated
// logins never stack timers.
func (s *Store) StartCycle(identityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.cycles[identityID]; running {
		return
	}
	stop := make(chan struct{})
	s.cycles[identityID] = stop
	go s.runCycle(identityID, stop)
}

// StopCycle cancels the identity's generation cycle if one is running.
func (s *Store) StopCycle(identityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, running := s.cycles[identityID]; running {
		close(stop)
		delete(s.cycles, identityID)
	}
}

// StopAllCycles cancels every running cycle; called on shutdown.
func (s *Store) StopAllCycles() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, stop := range s.cycles {
		close(stop)
		delete(s.cycles, id)
	}
}

func (s *Store) runCycle(identityID string, stop chan struct{}) {
	tick, cancel := s.newTicker(s.interval)
	defer cancel()
	for {
		select {
		case <-tick:
			s.GenerateOnce(identityID)
		case <-stop:
			return
		}
	}
}

// GenerateOnce runs a single generation pass: one reading per
// (garden, sensor type) pair, appended, truncated to the retention bound and
// persisted. It reports how many readings were appended. The identity lock
// keeps a tick from interleaving with a command — a pass that raced a
// cascade delete would re-persist the deleted garden's readings.
func (s *Store) GenerateOnce(identityID string) int {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	if len(gardens) == 0 {
		return 0
	}

	readings := s.gw.Readings(identityID)
	appended := 0
	for _, garden := range gardens {
		for _, sensorType := range garden.Sensors {
			reading, err := utils.GenerateReading(garden.ID, sensorType)
			if err != nil {
				log.Printf("store: skipping sensor %q on garden %s: %v", sensorType, garden.ID, err)
				continue
			}
			readings = append(readings, reading)
			appended++
		}
	}

	limit := ReadingsPerGarden * len(gardens)
	if len(readings) > limit {
		readings = readings[len(readings)-limit:]
	}
	if err := s.gw.SaveReadings(identityID, readings); err != nil {
		log.Printf("store: persisting readings for %s: %v", identityID, err)
	}
	return appended
}
