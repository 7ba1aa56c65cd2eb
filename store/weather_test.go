package store

import (
	"testing"
	"time"
)

func TestFetchWeatherCachesWithinFiveMinutes(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first := s.FetchWeather("u1", "Johannesburg")
	if first.Location != "Johannesburg" {
		t.Fatalf("unexpected location %q", first.Location)
	}

	now = now.Add(4 * time.Minute)
	second := s.FetchWeather("u1", "Johannesburg")
	if second != first {
		t.Fatalf("expected identical cached snapshot, got %+v vs %+v", second, first)
	}

	now = now.Add(2 * time.Minute) // past the 5-minute freshness window
	third := s.FetchWeather("u1", "Johannesburg")
	if !third.LastUpdated.After(first.LastUpdated) {
		t.Fatalf("expected regenerated snapshot with newer lastUpdated")
	}
}

func TestFetchWeatherCachesPerLocation(t *testing.T) {
	s := newTestStore(t)

	jhb := s.FetchWeather("u1", "Johannesburg")
	cpt := s.FetchWeather("u1", "Cape Town")
	if jhb.Location == cpt.Location {
		t.Fatalf("locations collided in cache")
	}
	if again := s.FetchWeather("u1", "Johannesburg"); again != jhb {
		t.Fatalf("cache lost the first location's snapshot")
	}
}

func TestClearWeatherDropsOnlyThatIdentity(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	ana := s.FetchWeather("ana", "Johannesburg")
	ben := s.FetchWeather("ben", "Johannesburg")

	s.ClearWeather("ana")

	now = now.Add(time.Second)
	if again := s.FetchWeather("ana", "Johannesburg"); !again.LastUpdated.After(ana.LastUpdated) {
		t.Fatalf("expected a fresh snapshot for the cleared identity")
	}
	// Ben never logged out; his snapshot is still fresh and must be served
	// as-is.
	if again := s.FetchWeather("ben", "Johannesburg"); again != ben {
		t.Fatalf("another identity's cache was evicted by the clear")
	}
}
