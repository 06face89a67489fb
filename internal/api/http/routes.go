package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
)

// Widget is the controller surface the routes drive.
type Widget interface {
	Refresh(ctx context.Context) (surface.State, bool)
	ToggleUnit(ctx context.Context) (surface.State, bool)
}

// Display is the rendered state the page polls.
type Display interface {
	Snapshot() surface.State
	DrainAlerts() []surface.Alert
}

// Options configures the page and request handling.
type Options struct {
	Width        int
	Height       int
	PollInterval time.Duration
	// CycleTimeout bounds a refresh triggered over HTTP.
	CycleTimeout time.Duration
}

// RegisterRoutes wires the page and the widget API into the Fiber app.
func RegisterRoutes(app *fiber.App, w Widget, d Display, opts Options) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.CycleTimeout <= 0 {
		opts.CycleTimeout = 30 * time.Second
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return renderPage(c, d.Snapshot(), opts)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/widget", func(c *fiber.Ctx) error {
		return c.JSON(d.Snapshot())
	})

	v1.Get("/widget/alerts", func(c *fiber.Ctx) error {
		return c.JSON(d.DrainAlerts())
	})

	v1.Post("/widget/refresh", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), opts.CycleTimeout)
		defer cancel()

		_, committed := w.Refresh(ctx)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"committed": committed,
			"state":     d.Snapshot(),
		})
	})

	v1.Post("/widget/unit/toggle", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), opts.CycleTimeout)
		defer cancel()

		decided, committed := w.ToggleUnit(ctx)
		unit, err := weather.ParseUnit(decided.Unit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "widget reported an unknown unit")
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"unit":      unit,
			"committed": committed,
			"state":     d.Snapshot(),
		})
	})
}
