package widget

import (
	"sync"

	"github.com/i474232898/weather-widget/internal/weather"
)

// Session holds the state that lives for one run of the widget.
// Coordinates are set at most once; the unit changes on toggle.
type Session struct {
	mu     sync.RWMutex
	coords *weather.Coordinates
	place  string
	unit   weather.Unit
}

func NewSession(unit weather.Unit) *Session {
	if unit == "" {
		unit = weather.Celsius
	}
	return &Session{unit: unit}
}

// Coordinates returns the cached position, if one was ever resolved.
func (s *Session) Coordinates() (weather.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coords == nil {
		return weather.Coordinates{}, false
	}
	return *s.coords, true
}

// SetCoordinates stores the position unless one is already fixed.
// It reports whether the value was stored.
func (s *Session) SetCoordinates(c weather.Coordinates) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coords != nil {
		return false
	}
	s.coords = &c
	return true
}

func (s *Session) Place() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.place
}

func (s *Session) SetPlace(place string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.place = place
}

func (s *Session) Unit() weather.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unit
}

// ToggleUnit flips between Celsius and Fahrenheit and returns the new unit.
func (s *Session) ToggleUnit() weather.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unit = s.unit.Toggle()
	return s.unit
}
