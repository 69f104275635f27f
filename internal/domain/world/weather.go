package world

import "time"

type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherStorm Weather = "storm"
	WeatherFog   Weather = "fog"
	WeatherSnow  Weather = "snow"
)

var weathers = [...]Weather{WeatherClear, WeatherRain, WeatherStorm, WeatherFog, WeatherSnow}

var weatherSpawnRates = map[Weather]float64{
	WeatherClear: 1.0,
	WeatherRain:  0.8,
	WeatherStorm: 0.5,
	WeatherFog:   1.2,
	WeatherSnow:  0.7,
}

func (w Weather) SpawnRateMultiplier() float64 {
	if v, ok := weatherSpawnRates[w]; ok {
		return v
	}
	return 1.0
}

// RandSource is the subset of *rand.Rand used by the domain.
type RandSource interface {
	Intn(n int) int
}

func RandomWeather(rng RandSource) Weather {
	return weathers[rng.Intn(len(weathers))]
}

type WeatherState struct {
	Current             Weather   `json:"current"`
	Next                Weather   `json:"next"`
	ChangesAt           time.Time `json:"changes_at"`
	SpawnRateMultiplier float64   `json:"spawn_rate_multiplier"`
}

func NewWeatherState(rng RandSource, now time.Time, interval time.Duration) WeatherState {
	current := RandomWeather(rng)
	return WeatherState{
		Current:             current,
		Next:                RandomWeather(rng),
		ChangesAt:           now.Add(interval),
		SpawnRateMultiplier: current.SpawnRateMultiplier(),
	}
}

// Advance applies the scheduled transition once now has reached ChangesAt.
func (s WeatherState) Advance(rng RandSource, now time.Time, interval time.Duration) WeatherState {
	if now.Before(s.ChangesAt) || interval <= 0 {
		return s
	}
	current := s.Next
	return WeatherState{
		Current:             current,
		Next:                RandomWeather(rng),
		ChangesAt:           now.Add(interval),
		SpawnRateMultiplier: current.SpawnRateMultiplier(),
	}
}
