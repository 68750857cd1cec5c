package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"article_importer/internal/domain"
	"article_importer/internal/logfile"
)

// Runner performs one import run.
type Runner interface {
	Run(ctx context.Context) (*domain.ImportStats, error)
}

// CheckpointStore persists the last-upload checkpoint that gates runs.
type CheckpointStore interface {
	Get(ctx context.Context) (domain.ImportCheckpoint, error)
	Update(ctx context.Context, lastUpload time.Time) error
}

// Gate triggers an import run only when the persisted checkpoint says the
// configured interval has elapsed. The checkpoint is advanced before the run
// starts, so overlapping triggers and mid-run crashes cannot cause a second
// import inside the same interval.
type Gate struct {
	mu          sync.Mutex
	runner      Runner
	checkpoints CheckpointStore
	logger      *slog.Logger
	runTimeout  time.Duration
}

func NewGate(runner Runner, checkpoints CheckpointStore, logger *slog.Logger, runTimeout time.Duration) *Gate {
	if runTimeout <= 0 {
		runTimeout = 30 * time.Minute
	}
	return &Gate{
		runner:      runner,
		checkpoints: checkpoints,
		logger:      logger.With("component", "scheduler"),
		runTimeout:  runTimeout,
	}
}

// Start polls the gate until the context is cancelled. The poll interval is
// deliberately much shorter than the import interval; the checkpoint decides
// whether a poll becomes a run.
func (g *Gate) Start(ctx context.Context, pollInterval time.Duration) error {
	g.logger.Info("scheduler started", "poll_interval", pollInterval)

	g.MaybeRun(ctx, time.Now())

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("scheduler stopped")
			return ctx.Err()
		case now := <-ticker.C:
			g.MaybeRun(ctx, now)
		}
	}
}

// MaybeRun checks the checkpoint and, if due, advances it and performs one
// run. It reports whether a run was attempted. The check-and-advance is
// serialized, so concurrent callers cannot both pass the gate.
func (g *Gate) MaybeRun(ctx context.Context, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	checkpoint, err := g.checkpoints.Get(ctx)
	if err != nil {
		g.logger.Error("could not read import checkpoint", "error", err)
		return false
	}

	if !checkpoint.Due(now) {
		return false
	}

	if err := g.checkpoints.Update(ctx, now); err != nil {
		g.logger.Error("could not advance import checkpoint", "error", err)
		return false
	}

	g.run(ctx)
	return true
}

// run executes one import, containing every failure: errors and panics are
// logged at Critical and swallowed so the polling loop keeps going.
func (g *Gate) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, g.runTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			g.logger.Log(ctx, logfile.LevelCritical, "import run panicked", "panic", fmt.Sprint(r))
		}
	}()

	if _, err := g.runner.Run(runCtx); err != nil {
		g.logger.Log(ctx, logfile.LevelCritical, "import run failed", "error", err)
	}
}
