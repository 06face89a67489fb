package widget

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/i474232898/weather-widget/internal/surface"
	"github.com/i474232898/weather-widget/internal/weather"
)

const (
	alertLocation = "Failed to determine location via IP."
	alertWeather  = "Failed to fetch weather data."
)

// Options tunes a Controller. The zero value is usable.
type Options struct {
	// MinLoading is the shortest time the loading state stays visible.
	MinLoading time.Duration
	// Namer, if set, labels the title with a place name once per session.
	Namer weather.PlaceNamer
	// NameTimeout bounds a place lookup. It runs alongside the weather fetch.
	NameTimeout time.Duration
}

const defaultNameTimeout = 5 * time.Second

// Controller drives the widget: it resolves the location, fetches the weather
// and renders the result to a surface. Overlapping refresh cycles are allowed;
// only the most recently started one may commit its result.
type Controller struct {
	resolver weather.LocationResolver
	fetcher  weather.Fetcher
	surface  surface.Surface
	session  *Session
	opts     Options

	generation *atomic.Uint64

	commitMu       sync.Mutex
	lastBackground string
}

func NewController(resolver weather.LocationResolver, fetcher weather.Fetcher, surf surface.Surface, session *Session, opts Options) *Controller {
	if session == nil {
		session = NewSession(weather.Celsius)
	}
	return &Controller{
		resolver:   resolver,
		fetcher:    fetcher,
		surface:    surf,
		session:    session,
		opts:       opts,
		generation: atomic.NewUint64(0),
	}
}

// Session exposes the controller's session state.
func (c *Controller) Session() *Session {
	return c.session
}

// Refresh runs one full cycle and returns the decided state and whether it was
// committed to the surface. A cycle superseded by a newer one is not committed.
func (c *Controller) Refresh(ctx context.Context) (surface.State, bool) {
	token := c.generation.Inc()
	trace := uuid.NewString()
	unit := c.session.Unit()

	log.Printf("DEBUG: widget: refresh %d (%s) started, unit=%s", token, trace, unit)
	c.commit(token, LoadingState(unit, c.background()))

	var (
		wg      sync.WaitGroup
		outcome Outcome
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		outcome = c.cycle(ctx, unit, trace)
	}()

	if c.opts.MinLoading > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer := time.NewTimer(c.opts.MinLoading)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}()
	}

	wg.Wait()

	state := Decide(outcome)
	committed := c.commit(token, state)
	if committed {
		log.Printf("DEBUG: widget: refresh %d (%s) committed phase=%s", token, trace, state.Phase)
	} else {
		log.Printf("INFO: widget: refresh %d (%s) superseded; result dropped", token, trace)
	}
	return state, committed
}

// ToggleUnit flips the temperature unit and immediately refreshes with it.
func (c *Controller) ToggleUnit(ctx context.Context) (surface.State, bool) {
	unit := c.session.ToggleUnit()
	log.Printf("INFO: widget: unit toggled to %s", unit)
	return c.Refresh(ctx)
}

// cycle performs the network part of a refresh. Failures are logged and alerted
// here and reported to the caller only through the outcome.
func (c *Controller) cycle(ctx context.Context, unit weather.Unit, trace string) Outcome {
	var naming sync.WaitGroup

	coords, ok := c.session.Coordinates()
	if !ok {
		resolved, err := c.resolver.ResolveLocation(ctx)
		if err != nil {
			log.Printf("ERROR: widget: ip geolocation failed (%s): %v", trace, err)
			c.surface.Alert(alertLocation)
			return Outcome{Unit: unit, LocationErr: err}
		}
		c.session.SetCoordinates(resolved)
		coords, _ = c.session.Coordinates()
		log.Printf("INFO: widget: ip-based location %s", coords)

		naming.Add(1)
		go func() {
			defer naming.Done()
			c.namePlace(ctx, coords)
		}()
	}

	reading, err := c.fetcher.FetchWeather(ctx, coords, unit)
	naming.Wait()
	if err != nil {
		log.Printf("ERROR: widget: weather fetch failed (%s): %v", trace, err)
		c.surface.Alert(alertWeather)
		return Outcome{Unit: unit, Place: c.session.Place(), WeatherErr: err}
	}

	return Outcome{Unit: unit, Place: c.session.Place(), Reading: reading}
}

func (c *Controller) namePlace(ctx context.Context, coords weather.Coordinates) {
	if c.opts.Namer == nil {
		return
	}
	timeout := c.opts.NameTimeout
	if timeout <= 0 {
		timeout = defaultNameTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name, err := c.opts.Namer.PlaceName(ctx, coords)
	if err != nil {
		log.Printf("INFO: widget: no place name for %s: %v", coords, err)
		return
	}
	c.session.SetPlace(name)
}

func (c *Controller) commit(token uint64, state surface.State) bool {
	c.commitMu.Lock()
	defer c.commitMu.Unlock()

	if token != c.generation.Load() {
		return false
	}
	c.surface.Apply(state)
	c.lastBackground = state.Background
	return true
}

func (c *Controller) background() string {
	c.commitMu.Lock()
	defer c.commitMu.Unlock()
	return c.lastBackground
}
