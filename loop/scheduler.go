package loop

import (
	"context"
	"time"
)

// Scheduler is the host hook that runs a callback once on the next display
// refresh or equivalent signal. A host surfaces the callback's error in
// whatever way fits it; the driver never retries.
type Scheduler interface {
	Schedule(fn func() error)
}

// ManualScheduler holds submitted callbacks until RunPending is called.
type ManualScheduler struct {
	pending []func() error
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(fn func() error) {
	s.pending = append(s.pending, fn)
}

// Pending returns the number of callbacks waiting to run.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// RunPending runs the callbacks submitted before the call. Callbacks they
// submit are kept for the next call. The first error stops the batch; the
// callbacks that did not run are dropped.
func (s *ManualScheduler) RunPending() error {
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// TickerScheduler runs submitted callbacks on a fixed interval from the
// goroutine that calls Run.
type TickerScheduler struct {
	ManualScheduler
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Run runs pending callbacks every interval until the context is cancelled or
// a callback fails. It returns nil on cancellation.
func (s *TickerScheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.RunPending(); err != nil {
				return err
			}
		}
	}
}
