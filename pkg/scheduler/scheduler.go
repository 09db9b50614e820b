package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/communityportal/notifier/pkg/notify"
)

//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// Dispatcher runs one periodic notification pass
type Dispatcher interface {
	Run(ctx context.Context, forced bool) (notify.RunResult, error)
}

// Scheduler triggers periodic dispatch runs. The dispatcher itself decides whether today is a
// digest day, so the trigger only has to fire often enough, once a day by default.
type Scheduler struct {
	dispatcher Dispatcher
	interval   time.Duration
	runOnStart bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
	runMu  sync.Mutex // serializes runs started by the ticker and by RunNow
}

// Params defines scheduler dependencies and timing
type Params struct {
	Dispatcher Dispatcher
	Interval   time.Duration
	RunOnStart bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.Interval == 0 {
		p.Interval = 24 * time.Hour
	}
	return &Scheduler{dispatcher: p.Dispatcher, interval: p.Interval, runOnStart: p.RunOnStart}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.dispatchWorker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v, run on start %v", s.interval, s.runOnStart)
}

// Stop gracefully stops the scheduler and waits for an active run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunNow performs a dispatch run immediately, waiting for a scheduled run in progress
func (s *Scheduler) RunNow(ctx context.Context, forced bool) (notify.RunResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.dispatcher.Run(ctx, forced)
}

func (s *Scheduler) dispatchWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.runScheduled(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runScheduled(ctx)
		}
	}
}

func (s *Scheduler) runScheduled(ctx context.Context) {
	res, err := s.RunNow(ctx, false)
	if err != nil {
		lgr.Printf("[ERROR] scheduled dispatch %s failed: %v", res.RunID, err)
		return
	}
	lgr.Printf("[DEBUG] scheduled dispatch %s: %s", res.RunID, res.Status())
}
