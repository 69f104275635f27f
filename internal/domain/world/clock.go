package world

import "time"

type Phase string

const (
	PhaseDawn  Phase = "dawn"
	PhaseDay   Phase = "day"
	PhaseDusk  Phase = "dusk"
	PhaseNight Phase = "night"
)

var phaseCycle = [...]Phase{PhaseDawn, PhaseDay, PhaseDusk, PhaseNight}

// Next returns the successor in the dawn, day, dusk, night cycle.
func (p Phase) Next() Phase {
	for i, v := range phaseCycle {
		if v == p {
			return phaseCycle[(i+1)%len(phaseCycle)]
		}
	}
	return PhaseDawn
}

type ClockConfig struct {
	StartAt       time.Time
	DawnDuration  time.Duration
	DayDuration   time.Duration
	DuskDuration  time.Duration
	NightDuration time.Duration
}

type Clock struct {
	cfg ClockConfig
}

func NewClock(cfg ClockConfig) Clock {
	if cfg.DawnDuration <= 0 {
		cfg.DawnDuration = 2 * time.Minute
	}
	if cfg.DayDuration <= 0 {
		cfg.DayDuration = 10 * time.Minute
	}
	if cfg.DuskDuration <= 0 {
		cfg.DuskDuration = 2 * time.Minute
	}
	if cfg.NightDuration <= 0 {
		cfg.NightDuration = 5 * time.Minute
	}
	if cfg.StartAt.IsZero() {
		cfg.StartAt = time.Unix(0, 0)
	}
	return Clock{cfg: cfg}
}

func DefaultClock() Clock {
	return NewClock(ClockConfig{})
}

func (c Clock) duration(p Phase) time.Duration {
	switch p {
	case PhaseDawn:
		return c.cfg.DawnDuration
	case PhaseDay:
		return c.cfg.DayDuration
	case PhaseDusk:
		return c.cfg.DuskDuration
	default:
		return c.cfg.NightDuration
	}
}

// PhaseAt returns the phase at now and the time left until it ends.
func (c Clock) PhaseAt(now time.Time) (Phase, time.Duration) {
	var total time.Duration
	for _, p := range phaseCycle {
		total += c.duration(p)
	}
	if total <= 0 {
		return PhaseDay, 0
	}
	elapsed := now.Sub(c.cfg.StartAt)
	if elapsed < 0 {
		elapsed = 0
	}
	offset := elapsed % total
	for _, p := range phaseCycle {
		d := c.duration(p)
		if offset < d {
			return p, d - offset
		}
		offset -= d
	}
	return PhaseNight, 0
}

type TimeState struct {
	Current            Phase     `json:"current"`
	Next               Phase     `json:"next"`
	ChangesAt          time.Time `json:"changes_at"`
	DayEnemiesActive   bool      `json:"day_enemies_active"`
	NightEnemiesActive bool      `json:"night_enemies_active"`
}

func newTimeState(current Phase, changesAt time.Time) TimeState {
	return TimeState{
		Current:            current,
		Next:               current.Next(),
		ChangesAt:          changesAt,
		DayEnemiesActive:   current == PhaseDawn || current == PhaseDay,
		NightEnemiesActive: current == PhaseDusk || current == PhaseNight,
	}
}

// StateAt derives the time-of-day state for the instant now.
func (c Clock) StateAt(now time.Time) TimeState {
	phase, remain := c.PhaseAt(now)
	return newTimeState(phase, now.Add(remain))
}

// Advance rolls s forward through every transition scheduled at or before now.
func (c Clock) Advance(s TimeState, now time.Time) TimeState {
	for !now.Before(s.ChangesAt) {
		d := c.duration(s.Next)
		if d <= 0 {
			return s
		}
		s = newTimeState(s.Next, s.ChangesAt.Add(d))
	}
	return s
}
