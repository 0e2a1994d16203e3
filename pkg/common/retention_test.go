package common

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePruner struct {
	mu     sync.Mutex
	calls  []int
	result database.PruneResult
	err    error
}

func (f *fakePruner) PruneOlderThan(ctx context.Context, days int) (database.PruneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, days)
	return f.result, f.err
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testLogger() logging.Logger {
	return logging.NewZapLoggerFrom("retention", zap.NewNop())
}

func TestRunOncePrunesWithConfiguredDays(t *testing.T) {
	pruner := &fakePruner{result: database.PruneResult{WeatherLogs: 4, UserSearches: 2}}
	rm := NewRetentionManager(pruner, "@daily", 30, testLogger())

	result, err := rm.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Total())
	assert.Equal(t, []int{30}, pruner.calls)

	at, last := rm.LastRun()
	assert.False(t, at.IsZero())
	assert.Equal(t, result, last)
}

func TestRunOnceWrapsErrors(t *testing.T) {
	rm := NewRetentionManager(&fakePruner{err: errors.New("database is locked")}, "@daily", 7, testLogger())

	_, err := rm.RunOnce(context.Background())
	assert.ErrorContains(t, err, "failed to prune old data")
}

func TestStartStop(t *testing.T) {
	rm := NewRetentionManager(&fakePruner{}, "@daily", 30, testLogger())

	require.NoError(t, rm.Start())
	assert.True(t, rm.Running())
	assert.True(t, rm.NextRun().After(time.Now()))
	assert.Error(t, rm.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	rm.Stop(ctx)
	assert.False(t, rm.Running())
	assert.True(t, rm.NextRun().IsZero())

	// stopping twice is harmless
	rm.Stop(ctx)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	rm := NewRetentionManager(&fakePruner{}, "every tuesday", 30, testLogger())
	assert.Error(t, rm.Start())
	assert.False(t, rm.Running())
}

func TestScheduledJobRuns(t *testing.T) {
	pruner := &fakePruner{}
	rm := NewRetentionManager(pruner, "@every 1s", 30, testLogger())
	require.NoError(t, rm.Start())
	defer rm.Stop(context.Background())

	assert.Eventually(t, func() bool { return pruner.callCount() > 0 }, 3*time.Second, 50*time.Millisecond)
}
