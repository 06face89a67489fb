package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-widget/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	// Upstream endpoints. The ipinfo token is a secret and never logged.
	LocationEndpoint string `validate:"required,url"`
	IPInfoToken      string
	WeatherEndpoint  string `validate:"required,url"`

	// GeocoderAPIKey enables reverse geocoding of the title (optional).
	GeocoderAPIKey string

	DefaultUnit string `validate:"oneof=celsius fahrenheit"`

	// RefreshInterval controls how often the widget refreshes on its own.
	RefreshInterval time.Duration `validate:"gt=0"`
	// MinLoadingDelay keeps the loading state visible on fast networks.
	MinLoadingDelay time.Duration `validate:"gte=0"`
	HTTPTimeout     time.Duration `validate:"gt=0"`

	// Alert queue retention.
	AlertMaxQueue int           `validate:"gte=0"` // 0 = unlimited
	AlertMaxAge   time.Duration `validate:"gte=0"` // 0 = unlimited

	// Fixed page size of the widget surface, in CSS pixels.
	WidgetWidth  int `validate:"gt=0"`
	WidgetHeight int `validate:"gt=0"`

	Port string `validate:"required,numeric"`
}

// Unit returns the configured default temperature unit.
func (c *AppConfig) Unit() weather.Unit {
	u, err := weather.ParseUnit(c.DefaultUnit)
	if err != nil {
		return weather.Celsius
	}
	return u
}

// Load reads configuration from the environment (and an optional .env file)
// with sensible defaults, then validates it.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.LocationEndpoint = getenvDefault("LOCATION_ENDPOINT", "https://ipinfo.io/json")
	cfg.IPInfoToken = os.Getenv("IPINFO_TOKEN")
	cfg.WeatherEndpoint = getenvDefault("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.DefaultUnit = getenvDefault("DEFAULT_UNIT", string(weather.Celsius))

	var err error
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	if cfg.MinLoadingDelay, err = getenvDuration("MIN_LOADING_DELAY", "1s"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.AlertMaxAge, err = getenvDuration("ALERT_MAX_AGE", "1m"); err != nil {
		return nil, err
	}
	cfg.AlertMaxQueue = getenvInt("ALERT_MAX_QUEUE", 16)

	cfg.WidgetWidth = getenvInt("WIDGET_WIDTH", 300)
	cfg.WidgetHeight = getenvInt("WIDGET_HEIGHT", 400)
	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
