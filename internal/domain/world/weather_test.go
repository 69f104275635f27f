package world

import (
	"testing"
	"time"
)

type fixedRand struct {
	seq []int
	i   int
}

func (r *fixedRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

func TestNewWeatherStateSchedulesTransition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWeatherState(&fixedRand{seq: []int{2, 3}}, now, 30*time.Minute)

	if s.Current != WeatherStorm || s.Next != WeatherFog {
		t.Fatalf("unexpected weather: %+v", s)
	}
	if s.SpawnRateMultiplier != 0.5 {
		t.Fatalf("expected storm multiplier 0.5, got %v", s.SpawnRateMultiplier)
	}
	if !s.ChangesAt.Equal(now.Add(30 * time.Minute)) {
		t.Fatalf("unexpected changes_at %s", s.ChangesAt)
	}
}

func TestWeatherStateAdvance(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rng := &fixedRand{seq: []int{0, 4, 1}}
	s := NewWeatherState(rng, now, time.Minute)

	if got := s.Advance(rng, now.Add(30*time.Second), time.Minute); got != s {
		t.Fatalf("expected no change before changes_at")
	}
	next := s.Advance(rng, now.Add(time.Minute), time.Minute)
	if next.Current != WeatherSnow || next.Next != WeatherRain {
		t.Fatalf("unexpected advanced weather: %+v", next)
	}
	if next.SpawnRateMultiplier != 0.7 {
		t.Fatalf("expected snow multiplier 0.7, got %v", next.SpawnRateMultiplier)
	}
}

func TestWeatherSpawnRates(t *testing.T) {
	for _, w := range weathers {
		if w.SpawnRateMultiplier() <= 0 {
			t.Fatalf("weather %s has no spawn rate", w)
		}
	}
}
