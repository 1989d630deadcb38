package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNowRecordsRuns(t *testing.T) {
	svc := New()

	out, err := svc.RunNow(context.Background(), "payroll_run", func(context.Context) (any, error) {
		return map[string]int{"created": 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"created": 3}, out)

	boom := errors.New("boom")
	_, err = svc.RunNow(context.Background(), JobSnapshot, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	runs := svc.Runs("", 0, 0)
	require.Len(t, runs, 2)
	assert.Equal(t, JobSnapshot, runs[0].Type)
	assert.Equal(t, StatusFailed, runs[0].Status)
	assert.Equal(t, "boom", runs[0].Error)
	assert.Equal(t, StatusCompleted, runs[1].Status)
	assert.JSONEq(t, `{"created":3}`, string(runs[1].Details))
	assert.NotNil(t, runs[1].CompletedAt)

	filtered := svc.Runs("payroll_run", 10, 0)
	require.Len(t, filtered, 1)
	assert.Empty(t, svc.Runs("", 10, 5))
}

func TestHistoryIsBounded(t *testing.T) {
	svc := New()
	svc.history = 3
	for i := 0; i < 5; i++ {
		_, _ = svc.RunNow(context.Background(), "x", func(context.Context) (any, error) { return i, nil })
	}
	runs := svc.Runs("", 0, 0)
	require.Len(t, runs, 3)
	assert.JSONEq(t, "4", string(runs[0].Details))
}

func TestWorkerRunsQueuedJobs(t *testing.T) {
	svc := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	done := make(chan struct{})
	require.True(t, svc.Enqueue("queued", func(context.Context) (any, error) {
		close(done)
		return nil, nil
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job did not run")
	}
}

func TestScheduledJobsTick(t *testing.T) {
	svc := New()
	ran := make(chan struct{}, 4)
	svc.Every("tick", 10*time.Millisecond, func(context.Context) (any, error) {
		ran <- struct{}{}
		return nil, nil
	})
	svc.Every("never", 0, func(context.Context) (any, error) { return nil, nil })
	assert.Len(t, svc.schedules, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}
