package widget

import (
	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
)

const (
	titleLoading       = "Loading weather…"
	titleDefault       = "Current weather"
	titleLocationError = "Could not determine location."
	titleWeatherError  = "Weather unavailable"

	emojiLoading = "⏳"
	emojiError   = "❓"

	ChipCondition   = "condition"
	ChipTemperature = "temperature"
)

// Outcome is the result of one refresh cycle, as seen by the decision step.
type Outcome struct {
	Unit        weather.Unit
	Place       string
	LocationErr error
	WeatherErr  error
	Reading     weather.Reading
}

// Decide computes the render state for a finished refresh cycle.
func Decide(o Outcome) surface.State {
	unit := o.Unit
	if unit == "" {
		unit = weather.Celsius
	}

	base := surface.State{
		Emoji:       emojiError,
		Chips:       []surface.Chip{},
		ToggleLabel: unit.Toggle().Symbol(),
		Background:  weather.DefaultGradient,
		Unit:        string(unit),
	}

	switch {
	case o.LocationErr != nil:
		base.Phase = surface.PhaseLocationError
		base.Title = titleLocationError
		return base
	case o.WeatherErr != nil:
		base.Phase = surface.PhaseWeatherError
		base.Title = titleWeatherError
		return base
	}

	title := o.Place
	if title == "" {
		title = titleDefault
	}

	code := o.Reading.WeatherCode
	return surface.State{
		Phase: surface.PhaseDisplaying,
		Title: title,
		Emoji: weather.Emoji(code),
		Chips: []surface.Chip{
			{Kind: ChipCondition, Text: weather.Condition(code)},
			{Kind: ChipTemperature, Text: weather.FormatTemperature(o.Reading.Temperature, unit)},
		},
		ToggleVisible: true,
		ToggleLabel:   unit.Toggle().Symbol(),
		Background:    weather.Gradient(code),
		Unit:          string(unit),
	}
}

// LoadingState is shown while a refresh cycle is in flight. It keeps the
// current background so the page does not flash.
func LoadingState(unit weather.Unit, background string) surface.State {
	if background == "" {
		background = weather.DefaultGradient
	}
	return surface.State{
		Phase:       surface.PhaseLoading,
		Title:       titleLoading,
		Emoji:       emojiLoading,
		Chips:       []surface.Chip{},
		ToggleLabel: unit.Toggle().Symbol(),
		Background:  background,
		Unit:        string(unit),
	}
}
