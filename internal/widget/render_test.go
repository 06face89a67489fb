package widget

import (
	"errors"
	"testing"

	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
)

func TestDecide(t *testing.T) {
	failure := errors.New("boom")

	cases := []struct {
		name       string
		in         Outcome
		phase      surface.Phase
		title      string
		emoji      string
		chips      []string
		toggle     bool
		label      string
		background string
	}{
		{
			name:       "displaying celsius",
			in:         Outcome{Unit: weather.Celsius, Reading: weather.Reading{Temperature: 21.5, WeatherCode: 3}},
			phase:      surface.PhaseDisplaying,
			title:      titleDefault,
			emoji:      "☁️",
			chips:      []string{"Overcast", "21.5°C"},
			toggle:     true,
			label:      "°F",
			background: weather.Gradient(3),
		},
		{
			name:       "displaying fahrenheit with place",
			in:         Outcome{Unit: weather.Fahrenheit, Place: "Oslo, NO", Reading: weather.Reading{Temperature: 14, WeatherCode: 61}},
			phase:      surface.PhaseDisplaying,
			title:      "Oslo, NO",
			emoji:      "🌧️",
			chips:      []string{"Rain", "14°F"},
			toggle:     true,
			label:      "°C",
			background: weather.Gradient(61),
		},
		{
			name:       "unknown code",
			in:         Outcome{Unit: weather.Celsius, Reading: weather.Reading{Temperature: 0, WeatherCode: 42}},
			phase:      surface.PhaseDisplaying,
			title:      titleDefault,
			emoji:      "❓",
			chips:      []string{"Unknown", "0°C"},
			toggle:     true,
			label:      "°F",
			background: weather.DefaultGradient,
		},
		{
			name:       "location error wins over weather error",
			in:         Outcome{Unit: weather.Celsius, LocationErr: failure, WeatherErr: failure},
			phase:      surface.PhaseLocationError,
			title:      titleLocationError,
			emoji:      emojiError,
			label:      "°F",
			background: weather.DefaultGradient,
		},
		{
			name:       "weather error",
			in:         Outcome{Unit: weather.Fahrenheit, WeatherErr: failure, Reading: weather.Reading{WeatherCode: 95}},
			phase:      surface.PhaseWeatherError,
			title:      titleWeatherError,
			emoji:      emojiError,
			label:      "°C",
			background: weather.DefaultGradient,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.in)
			if got.Phase != tc.phase || got.Title != tc.title || got.Emoji != tc.emoji {
				t.Fatalf("unexpected state %+v", got)
			}
			if got.ToggleVisible != tc.toggle || got.ToggleLabel != tc.label {
				t.Fatalf("unexpected toggle %v %q", got.ToggleVisible, got.ToggleLabel)
			}
			if got.Background != tc.background {
				t.Fatalf("unexpected background %q", got.Background)
			}
			if len(got.Chips) != len(tc.chips) {
				t.Fatalf("unexpected chips %+v", got.Chips)
			}
			for i, text := range tc.chips {
				if got.Chips[i].Text != text {
					t.Fatalf("chip %d = %q, want %q", i, got.Chips[i].Text, text)
				}
			}
		})
	}
}

func TestLoadingStateKeepsBackground(t *testing.T) {
	st := LoadingState(weather.Fahrenheit, "linear-gradient(red, blue)")
	if st.Phase != surface.PhaseLoading || st.Background != "linear-gradient(red, blue)" {
		t.Fatalf("unexpected loading state %+v", st)
	}
	if st.ToggleLabel != "°C" {
		t.Fatalf("expected loading toggle label °C, got %q", st.ToggleLabel)
	}
	if LoadingState(weather.Celsius, "").Background != weather.DefaultGradient {
		t.Fatal("expected default gradient when nothing was rendered yet")
	}
}
