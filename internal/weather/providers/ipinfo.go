package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-widget/internal/weather"
)

// IPInfoResolver resolves the caller's coordinates from an ipinfo.io-style endpoint.
type IPInfoResolver struct {
	name     string
	endpoint string
	token    string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker

	mu    sync.RWMutex
	place string
}

func NewIPInfoResolver(client *http.Client, endpoint, token string) *IPInfoResolver {
	return &IPInfoResolver{
		name:     "ipinfo",
		endpoint: endpoint,
		token:    token,
		client:   client,
		circuit:  newBreaker("ipinfo"),
	}
}

// ResolveLocation performs a single lookup and parses the "lat,lon" loc field.
func (r *IPInfoResolver) ResolveLocation(ctx context.Context) (weather.Coordinates, error) {
	u, err := url.Parse(r.endpoint)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("invalid location endpoint: %w", err)
	}
	if r.token != "" {
		q := u.Query()
		q.Set("token", r.token)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return weather.Coordinates{}, err
	}

	resp, err := doRequest(ctx, r.client, r.circuit, req)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%s: ip location lookup: %w", r.name, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Loc     string `json:"loc"`
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: decode ip info: %v", weather.ErrMalformedResponse, err)
	}
	if payload.Loc == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: no location found in ip info", weather.ErrMalformedResponse)
	}

	coords, err := ParseLoc(payload.Loc)
	if err != nil {
		return weather.Coordinates{}, err
	}

	r.mu.Lock()
	r.place = joinPlace(payload.City, payload.Country)
	r.mu.Unlock()

	return coords, nil
}

// Place returns the "City, Country" label reported by the last successful lookup.
func (r *IPInfoResolver) Place() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.place
}

// PlaceName satisfies weather.PlaceNamer using the label captured during resolution.
func (r *IPInfoResolver) PlaceName(_ context.Context, _ weather.Coordinates) (string, error) {
	if p := r.Place(); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no place reported by %s", r.name)
}

// ParseLoc parses a "lat,lon" pair into coordinates.
func ParseLoc(loc string) (weather.Coordinates, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return weather.Coordinates{}, fmt.Errorf("%w: loc %q is not a lat,lon pair", weather.ErrMalformedResponse, loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: latitude %q: %v", weather.ErrMalformedResponse, parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: longitude %q: %v", weather.ErrMalformedResponse, parts[1], err)
	}

	coords := weather.Coordinates{Latitude: lat, Longitude: lon}
	if err := validate.Struct(coords); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
	}
	return coords, nil
}

func joinPlace(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}
