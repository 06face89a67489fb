package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-widget/internal/weather"
)

// OpenMeteoFetcher implements weather.Fetcher for the Open-Meteo forecast API.
type OpenMeteoFetcher struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoFetcher(client *http.Client, baseURL string) *OpenMeteoFetcher {
	return &OpenMeteoFetcher{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo"),
	}
}

// FetchWeather performs a single current_weather request in the requested unit.
func (p *OpenMeteoFetcher) FetchWeather(ctx context.Context, coords weather.Coordinates, unit weather.Unit) (weather.Reading, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("%s: invalid weather endpoint: %w", p.name, err)
	}

	// Merge into any query the endpoint already carries (e.g. an apikey).
	values := u.Query()
	values.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	values.Set("current_weather", "true")
	values.Set("temperature_unit", string(unit))

	u.RawQuery = values.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return weather.Reading{}, err
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("%s: weather fetch: %w", p.name, err)
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather *struct {
			Temperature *float64 `json:"temperature"`
			WeatherCode *int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: decode forecast: %v", weather.ErrMalformedResponse, err)
	}

	cw := payload.CurrentWeather
	if cw == nil {
		return weather.Reading{}, fmt.Errorf("%w: no weather data found", weather.ErrMalformedResponse)
	}
	if cw.Temperature == nil || cw.WeatherCode == nil {
		return weather.Reading{}, fmt.Errorf("%w: current_weather lacks temperature or weathercode", weather.ErrMalformedResponse)
	}

	return weather.Reading{
		Temperature: *cw.Temperature,
		WeatherCode: *cw.WeatherCode,
	}, nil
}
