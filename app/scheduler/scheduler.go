package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/strategix-ai/site-server/app/blog"
)

// SyncRunner is the orchestrator operation the scheduler drives.
type SyncRunner interface {
	Run(ctx context.Context, forceUpdate bool) (blog.SyncResult, error)
}

// Scheduler fires the sync once at startup and then on a fixed interval
// for the life of the process. The schedule is not persisted; a restart
// resets it. A tick that arrives while a run is still in flight is
// skipped rather than interleaved against the store.
type Scheduler struct {
	syncer      SyncRunner
	interval    time.Duration
	forceUpdate bool
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	inFlight    atomic.Bool
}

func NewScheduler(syncer SyncRunner, interval time.Duration, forceUpdate bool) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		syncer:      syncer,
		interval:    interval,
		forceUpdate: forceUpdate,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting blog sync scheduler", "interval", s.interval.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.runOnce()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Blog sync scheduler stopped")
}

func (s *Scheduler) runOnce() {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Debug("Previous sync still running, skipping tick")
		return
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	result, err := s.syncer.Run(s.ctx, s.forceUpdate)
	if err != nil {
		// Scheduled runs log and wait for the next tick; there is no
		// immediate retry.
		slog.Error("Scheduled blog sync failed", "error", err)
		return
	}

	slog.Info("Scheduled blog sync finished",
		"imported", result.Imported,
		"updated", result.Updated,
		"duration", time.Since(start).String())
}
