package models

// Stat is a bounded quantity. Current always stays within [0, Max].
type Stat struct {
	current int
	max     int
}

// NewStat creates a Stat with the given maximum, clamping current into range.
func NewStat(current, max int) Stat {
	if max < 0 {
		max = 0
	}
	s := Stat{max: max}
	s.Set(current)
	return s
}

func (s *Stat) Get() int { return s.current }
func (s *Stat) Max() int { return s.max }

// Set replaces the current value, clamped to [0, Max].
func (s *Stat) Set(v int) {
	s.current = clamp(v, 0, s.max)
}

// Adjust adds delta to the current value, clamped to [0, Max].
func (s *Stat) Adjust(delta int) {
	s.Set(s.current + delta)
}

// Missing returns how far the value sits below its maximum.
func (s *Stat) Missing() int { return s.max - s.current }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
