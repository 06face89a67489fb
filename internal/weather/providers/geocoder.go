package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-widget/internal/weather"
)

var errNoGeocoderKey = errors.New("geocoder api key is not configured")

// GeocoderNamer reverse-geocodes coordinates through the Google Geocoding API.
type GeocoderNamer struct {
	apiKey  string
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

// NewGeocoderNamer configures the geocoder package key. The key is process-global
// in the geocoder package, so only one namer should exist per process.
func NewGeocoderNamer(apiKey string) *GeocoderNamer {
	geocoder.ApiKey = apiKey
	return &GeocoderNamer{
		apiKey:  apiKey,
		reverse: geocoder.GeocodingReverse,
	}
}

// PlaceName returns "City, Country" for the first address with a city.
func (g *GeocoderNamer) PlaceName(ctx context.Context, coords weather.Coordinates) (string, error) {
	if g.apiKey == "" {
		return "", errNoGeocoderKey
	}

	type result struct {
		addrs []geocoder.Address
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		addrs, err := g.reverse(geocoder.Location{
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
		})
		ch <- result{addrs, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", fmt.Errorf("reverse geocode %s: %w", coords, res.err)
		}
		for _, a := range res.addrs {
			if a.City != "" {
				return joinPlace(a.City, a.Country), nil
			}
		}
		return "", fmt.Errorf("reverse geocode %s: no city in %d results", coords, len(res.addrs))
	}
}

// ChainNamer tries each namer in order and returns the first label found.
type ChainNamer []weather.PlaceNamer

func (c ChainNamer) PlaceName(ctx context.Context, coords weather.Coordinates) (string, error) {
	var errs []error
	for _, n := range c {
		if n == nil {
			continue
		}
		name, err := n.PlaceName(ctx, coords)
		if err == nil && name != "" {
			return name, nil
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return "", errors.New("no place namer produced a label")
	}
	return "", errors.Join(errs...)
}
