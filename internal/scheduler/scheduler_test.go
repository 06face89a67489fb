package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/atomic"
)

func TestStartRunsInitialRefreshImmediately(t *testing.T) {
	calls := atomic.NewInt32(0)
	s := New(time.Hour, RefreshFunc(func(ctx context.Context) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected refresh context to carry a deadline")
		}
		calls.Inc()
	}))

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one refresh before the first tick, got %d", got)
	}
}

func TestStartSchedulesRecurringRefresh(t *testing.T) {
	calls := atomic.NewInt32(0)
	s := New(100*time.Millisecond, RefreshFunc(func(context.Context) {
		calls.Inc()
	}))

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if calls.Load() >= 3 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected recurring refreshes, got %d calls", calls.Load())
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(0, RefreshFunc(func(context.Context) {}))
	if s.interval != 5*time.Minute {
		t.Fatalf("expected 5m default interval, got %v", s.interval)
	}
}

func TestScheduledRefreshStopsWithStartContext(t *testing.T) {
	calls := atomic.NewInt32(0)
	running := make(chan struct{})
	cancelled := make(chan bool, 1)

	s := New(50*time.Millisecond, RefreshFunc(func(ctx context.Context) {
		if calls.Inc() != 2 {
			return
		}
		close(running)
		select {
		case <-ctx.Done():
			cancelled <- true
		case <-time.After(2 * time.Second):
			cancelled <- false
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	select {
	case <-running:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled refresh never ran")
	}
	cancel()

	if !<-cancelled {
		t.Fatal("expected shutdown to cancel the running refresh")
	}
}
