package store

import (
	"time"

	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/utils"
)

// weatherTTL is how long a cached snapshot stays fresh.
const weatherTTL = 5 * time.Minute

// FetchWeather returns the identity's cached snapshot for a location while
// it is younger than five minutes, otherwise regenerates and replaces it.
// It never fails outward.
func (s *Store) FetchWeather(identityID, location string) models.WeatherSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache := s.weather[identityID]
	if snap, ok := cache[location]; ok && s.now().Sub(snap.LastUpdated) < weatherTTL {
		return snap
	}

	snap := utils.MockWeather(location)
	snap.LastUpdated = s.now()
	if cache == nil {
		cache = make(map[string]models.WeatherSnapshot)
		s.weather[identityID] = cache
	}
	cache[location] = snap
	return snap
}

// ClearWeather drops one identity's weather cache on logout; other
// identities' fresh snapshots are untouched.
func (s *Store) ClearWeather(identityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.weather, identityID)
}
