// Package retention prunes stale sign-in attempts on a cron schedule.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/robfig/cron/v3"
)

// Scheduler deletes sign-in attempts that have not signed in for ttl.
// Attempts belonging to employees are kept regardless of age.
type Scheduler struct {
	cron     *cron.Cron
	store    storage.AccessStore
	schedule string
	ttl      time.Duration
	nowFn    func() time.Time
}

// NewScheduler validates schedule (standard 5-field cron, or a descriptor
// such as "@daily" or "@every 6h") and returns a stopped scheduler.
func NewScheduler(store storage.AccessStore, schedule string, ttl time.Duration) (*Scheduler, error) {
	if store == nil {
		panic("retention: store must not be nil")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("retention ttl must be > 0, got %s", ttl)
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", schedule, err)
	}
	return &Scheduler{
		cron:     cron.New(),
		store:    store,
		schedule: schedule,
		ttl:      ttl,
		nowFn:    time.Now,
	}, nil
}

// RunOnce prunes everything older than now-ttl.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.nowFn().UTC().Add(-s.ttl)
	removed, err := s.store.PruneSignInAttempts(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune sign-in attempts before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if removed > 0 {
		slog.Info("[Retention] Pruned stale sign-in attempts", "removed", removed, "cutoff", cutoff)
	}
	return removed, nil
}

// Start runs one pass immediately, then on every schedule tick until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("register retention job: %w", err)
	}

	slog.Info("[Retention] Starting scheduler", "schedule", s.schedule, "ttl", s.ttl)
	s.run(ctx)
	s.cron.Start()

	<-ctx.Done()
	slog.Info("[Retention] Stopping (context cancelled)")
	<-s.cron.Stop().Done()
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.RunOnce(ctx); err != nil {
		slog.Error("[Retention] Prune failed", "error", err)
	}
}
