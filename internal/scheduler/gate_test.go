package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_importer/internal/domain"
)

type fakeCheckpoints struct {
	mu         sync.Mutex
	checkpoint domain.ImportCheckpoint
	updates    []time.Time
	getErr     error
	updateErr  error
}

func (f *fakeCheckpoints) Get(context.Context) (domain.ImportCheckpoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkpoint, f.getErr
}

func (f *fakeCheckpoints) Update(_ context.Context, lastUpload time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.checkpoint.LastUpload = lastUpload
	f.updates = append(f.updates, lastUpload)
	return nil
}

type fakeRunner struct {
	mu    sync.Mutex
	runs  int
	err   error
	panic bool
	// onRun observes state at the moment the run starts.
	onRun func()
}

func (f *fakeRunner) Run(context.Context) (*domain.ImportStats, error) {
	f.mu.Lock()
	f.runs++
	f.mu.Unlock()
	if f.onRun != nil {
		f.onRun()
	}
	if f.panic {
		panic("boom")
	}
	return &domain.ImportStats{}, f.err
}

func (f *fakeRunner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

func gateLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(100)}))
}

func TestMaybeRunBeforeIntervalDoesNothing(t *testing.T) {
	lastUpload := time.Date(2011, 6, 8, 12, 0, 0, 0, time.UTC)
	checkpoints := &fakeCheckpoints{checkpoint: domain.ImportCheckpoint{
		LastUpload: lastUpload,
		Interval:   180 * time.Minute,
	}}
	runner := &fakeRunner{}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	ran := gate.MaybeRun(context.Background(), lastUpload.Add(179*time.Minute))

	assert.False(t, ran)
	assert.Equal(t, 0, runner.count())
	assert.Empty(t, checkpoints.updates)
}

func TestMaybeRunAfterIntervalRunsOnceAndAdvancesFirst(t *testing.T) {
	lastUpload := time.Date(2011, 6, 8, 12, 0, 0, 0, time.UTC)
	checkpoints := &fakeCheckpoints{checkpoint: domain.ImportCheckpoint{
		LastUpload: lastUpload,
		Interval:   180 * time.Minute,
	}}

	now := lastUpload.Add(181 * time.Minute)
	runner := &fakeRunner{}
	runner.onRun = func() {
		// The checkpoint must already be rewritten when the run starts.
		checkpoints.mu.Lock()
		defer checkpoints.mu.Unlock()
		require.Len(t, checkpoints.updates, 1)
		assert.Equal(t, now, checkpoints.checkpoint.LastUpload)
	}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	ran := gate.MaybeRun(context.Background(), now)

	assert.True(t, ran)
	assert.Equal(t, 1, runner.count())

	// Immediately after, the gate is closed again.
	assert.False(t, gate.MaybeRun(context.Background(), now.Add(time.Minute)))
	assert.Equal(t, 1, runner.count())
}

func TestMaybeRunSwallowsRunError(t *testing.T) {
	checkpoints := &fakeCheckpoints{checkpoint: domain.ImportCheckpoint{Interval: time.Minute}}
	runner := &fakeRunner{err: fmt.Errorf("feed unreachable")}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	assert.True(t, gate.MaybeRun(context.Background(), time.Now()))
	assert.Equal(t, 1, runner.count())
}

func TestMaybeRunSwallowsPanic(t *testing.T) {
	checkpoints := &fakeCheckpoints{checkpoint: domain.ImportCheckpoint{Interval: time.Minute}}
	runner := &fakeRunner{panic: true}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	assert.NotPanics(t, func() {
		gate.MaybeRun(context.Background(), time.Now())
	})
	assert.Equal(t, 1, runner.count())
}

func TestMaybeRunCheckpointReadFailureSkipsRun(t *testing.T) {
	checkpoints := &fakeCheckpoints{getErr: fmt.Errorf("connection refused")}
	runner := &fakeRunner{}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	assert.False(t, gate.MaybeRun(context.Background(), time.Now()))
	assert.Equal(t, 0, runner.count())
}

func TestMaybeRunCheckpointWriteFailureSkipsRun(t *testing.T) {
	checkpoints := &fakeCheckpoints{
		checkpoint: domain.ImportCheckpoint{Interval: time.Minute},
		updateErr:  fmt.Errorf("read-only transaction"),
	}
	runner := &fakeRunner{}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	assert.False(t, gate.MaybeRun(context.Background(), time.Now()))
	assert.Equal(t, 0, runner.count())
}

func TestConcurrentTriggersRunOnce(t *testing.T) {
	lastUpload := time.Date(2011, 6, 8, 12, 0, 0, 0, time.UTC)
	checkpoints := &fakeCheckpoints{checkpoint: domain.ImportCheckpoint{
		LastUpload: lastUpload,
		Interval:   180 * time.Minute,
	}}
	runner := &fakeRunner{}
	gate := NewGate(runner, checkpoints, gateLogger(), time.Minute)

	now := lastUpload.Add(4 * time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gate.MaybeRun(context.Background(), now)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, runner.count())
	assert.Len(t, checkpoints.updates, 1)
}
