package weather

import (
	"context"
	"errors"
)

var (
	// ErrNetwork is returned when a request did not complete with a success status.
	ErrNetwork = errors.New("network failure")
	// ErrMalformedResponse is returned when a successful response lacks the
	// expected fields or cannot be parsed.
	ErrMalformedResponse = errors.New("malformed response")
)

// LocationResolver determines the caller's position (e.g. from its public IP).
type LocationResolver interface {
	ResolveLocation(ctx context.Context) (Coordinates, error)
}

// Fetcher retrieves the current weather for a position in the given unit.
type Fetcher interface {
	FetchWeather(ctx context.Context, coords Coordinates, unit Unit) (Reading, error)
}

// PlaceNamer turns coordinates into a short human-readable place label.
type PlaceNamer interface {
	PlaceName(ctx context.Context, coords Coordinates) (string, error)
}
