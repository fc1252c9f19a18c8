package models

import "testing"

func TestStatClamps(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		max    int
		adjust int
		want   int
	}{
		{"within range", 50, 100, 20, 70},
		{"clamped to max", 90, 100, 50, 100},
		{"clamped to zero", 10, 100, -50, 0},
		{"start above max", 500, 100, 0, 100},
		{"start negative", -5, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStat(tt.start, tt.max)
			s.Adjust(tt.adjust)
			if s.Get() != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, s.Get())
			}
		})
	}
}

func TestStatSet(t *testing.T) {
	s := NewStat(0, 10)
	s.Set(11)
	if s.Get() != 10 {
		t.Errorf("Expected 10, got %d", s.Get())
	}
	s.Set(-1)
	if s.Get() != 0 {
		t.Errorf("Expected 0, got %d", s.Get())
	}
	if s.Missing() != 10 {
		t.Errorf("Expected missing 10, got %d", s.Missing())
	}
}
