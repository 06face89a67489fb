package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	httpapi "github.com/i474232898/weather-widget/internal/api/http"
	"github.com/i474232898/weather-widget/internal/config"
	"github.com/i474232898/weather-widget/internal/scheduler"
	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/weather/providers"
	"github.com/i474232898/weather-widget/internal/widget"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	resolver := providers.NewIPInfoResolver(httpClient, cfg.LocationEndpoint, cfg.IPInfoToken)
	fetcher := providers.NewOpenMeteoFetcher(httpClient, cfg.WeatherEndpoint)

	// Reverse geocoding is optional; the ipinfo city is the fallback title.
	namer := providers.ChainNamer{resolver}
	if cfg.GeocoderAPIKey != "" {
		namer = providers.ChainNamer{providers.NewGeocoderNamer(cfg.GeocoderAPIKey), resolver}
	}

	display := surface.NewMemory(widget.LoadingState(cfg.Unit(), weather.DefaultGradient), cfg.AlertMaxQueue, cfg.AlertMaxAge)
	log.Printf("INFO: widget session %s", display.SessionID())

	ctrl := widget.NewController(resolver, fetcher, display, widget.NewSession(cfg.Unit()), widget.Options{
		MinLoading:  cfg.MinLoadingDelay,
		Namer:       namer,
		NameTimeout: cfg.HTTPTimeout,
	})

	app := fiber.New(fiber.Config{
		AppName:               "weather-widget",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.HTTPTimeout + cfg.MinLoadingDelay + 10*time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-widget",
		})
	})

	httpapi.RegisterRoutes(app, ctrl, display, httpapi.Options{
		Width:        cfg.WidgetWidth,
		Height:       cfg.WidgetHeight,
		CycleTimeout: cfg.HTTPTimeout*2 + cfg.MinLoadingDelay,
	})

	go func() {
		log.Printf("INFO: widget available at http://localhost:%s/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial load, then the periodic refresh.
	sched := scheduler.New(cfg.RefreshInterval, scheduler.RefreshFunc(func(ctx context.Context) {
		ctrl.Refresh(ctx)
	}))
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
