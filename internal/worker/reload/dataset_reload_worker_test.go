package reload_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/worker"
	"github.com/cellmap-service/internal/worker/reload"
)

type countingReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countingReloader) Reload(ctx context.Context) (bool, error) {
	n := r.calls.Add(1)
	if r.err != nil {
		return false, r.err
	}
	return n == 1, nil
}

func TestDatasetReloadWorker_TicksUntilStopped(t *testing.T) {
	reloader := &countingReloader{}
	w := reload.NewDatasetReloadWorker(reloader, 5*time.Millisecond, zap.NewNop())
	assert.Equal(t, "dataset-reload", w.Name())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestDatasetReloadWorker_ErrorsDoNotStopWorker(t *testing.T) {
	reloader := &countingReloader{err: errors.New("source down")}
	w := reload.NewDatasetReloadWorker(reloader, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestWorkerManager(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	require.Error(t, m.Start(context.Background()), "no workers registered")

	reloader := &countingReloader{}
	m.Register(reload.NewDatasetReloadWorker(reloader, 5*time.Millisecond, zap.NewNop()))

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, m.Stop())
}
