package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the temperature scale requested from the weather provider.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts the provider query values ("celsius", "fahrenheit"),
// case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case Celsius:
		return Celsius, nil
	case Fahrenheit:
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Symbol returns the display suffix for the unit.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Coordinates is a resolved position. Latitude and longitude are WGS84 degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// Reading is the current weather as reported by the provider, unmodified.
type Reading struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

// FormatTemperature renders a temperature with the shortest exact decimal
// representation followed by the unit symbol, e.g. "21.5°C".
func FormatTemperature(t float64, u Unit) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + u.Symbol()
}
