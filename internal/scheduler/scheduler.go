package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

const (
	defaultInterval = 5 * time.Minute
	jobTimeout      = 30 * time.Second
)

// Refresher is the widget operation the scheduler triggers.
type Refresher interface {
	Refresh(ctx context.Context)
}

// RefreshFunc adapts a plain function to Refresher.
type RefreshFunc func(ctx context.Context)

func (f RefreshFunc) Refresh(ctx context.Context) { f(ctx) }

// Scheduler runs the initial load and then refreshes the widget periodically.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration

	// ctx is the Start context; every scheduled run derives from it.
	ctx context.Context
}

// New creates a new Scheduler. A non-positive interval falls back to five minutes.
func New(interval time.Duration, refresher Refresher) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
	}
}

// Start runs one refresh synchronously, then schedules the recurring job.
// The first scheduled run happens one interval after Start.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	log.Println("scheduler: running initial weather refresh")
	s.run(ctx)

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		if s.ctx.Err() != nil {
			log.Println("scheduler: skipping weather refresh job; shutting down")
			return
		}
		log.Println("scheduler: running weather refresh job")
		s.run(s.ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, jobTimeout)
	defer cancel()
	s.refresher.Refresh(ctx)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
