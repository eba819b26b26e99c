// Package schedule runs named jobs once per day at a fixed local time.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a background task fired once per day.
type Job struct {
	Name string
	// At is the local wall-clock time in "HH:MM" form.
	At string
	Fn func(ctx context.Context) error
}

// Scheduler manages a collection of named daily jobs.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	logger *zap.Logger
	now    func() time.Time
}

// New creates an empty Scheduler.
func New(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger, now: time.Now}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) error {
	if _, err := parseAt(job.At); err != nil {
		return fmt.Errorf("job %q: %w", job.Name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return nil
}

// Start launches every registered job loop and blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runLoop(ctx, job)
		}(job)
	}
	wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	for {
		next := nextRun(s.now(), job.At)
		s.logger.Info("job scheduled",
			zap.String("job", job.Name),
			zap.Time("next_run", next))

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		start := s.now()
		if err := job.Fn(ctx); err != nil {
			s.logger.Error("job failed",
				zap.String("job", job.Name),
				zap.Duration("took", s.now().Sub(start)),
				zap.Error(err))
		} else {
			s.logger.Info("job finished",
				zap.String("job", job.Name),
				zap.Duration("took", s.now().Sub(start)))
		}
	}
}

// nextRun returns the next occurrence of the HH:MM wall-clock time strictly
// after now. A malformed at (caught earlier by Register) falls back to
// midnight.
func nextRun(now time.Time, at string) time.Time {
	hm, err := parseAt(at)
	if err != nil {
		hm = 0
	}
	next := time.Date(now.Year(), now.Month(), now.Day(),
		hm/60, hm%60, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// parseAt validates "HH:MM" and returns minutes since midnight.
func parseAt(at string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(at, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", at)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", at)
	}
	return h*60 + m, nil
}
