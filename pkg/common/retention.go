package common

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/robfig/cron/v3"
)

// Pruner deletes support-table rows older than a number of days
type Pruner interface {
	PruneOlderThan(ctx context.Context, days int) (database.PruneResult, error)
}

// RetentionManager prunes weather_logs, user_searches and system_logs on a
// cron schedule
type RetentionManager struct {
	pruner   Pruner
	schedule string
	days     int
	timeout  time.Duration
	logger   logging.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
	lastRun time.Time
	last    database.PruneResult
}

// NewRetentionManager creates a manager; schedule uses the standard cron
// syntax plus descriptors such as @daily.
func NewRetentionManager(pruner Pruner, schedule string, days int, logger logging.Logger) *RetentionManager {
	return &RetentionManager{
		pruner:   pruner,
		schedule: schedule,
		days:     days,
		timeout:  5 * time.Minute,
		logger:   logger.WithPipeline("retention"),
	}
}

// Start registers the job and starts the scheduler. Calling Start twice is
// an error.
func (rm *RetentionManager) Start() error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.cron != nil {
		return fmt.Errorf("retention scheduler already running")
	}

	c := cron.New(cron.WithLocation(time.UTC))
	id, err := c.AddFunc(rm.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), rm.timeout)
		defer cancel()
		if _, err := rm.RunOnce(ctx); err != nil {
			rm.logger.Error("Scheduled prune failed", err, nil)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid retention schedule %q: %w", rm.schedule, err)
	}

	c.Start()
	rm.cron = c
	rm.entryID = id

	rm.logger.Info("Starting retention scheduler", map[string]interface{}{
		"schedule":    rm.schedule,
		"retain_days": rm.days,
		"next_run":    c.Entry(id).Next,
	})
	return nil
}

// Stop stops the scheduler and waits for a running prune to finish or ctx
// to expire.
func (rm *RetentionManager) Stop(ctx context.Context) {
	rm.mu.Lock()
	c := rm.cron
	rm.cron = nil
	rm.mu.Unlock()

	if c == nil {
		return
	}

	select {
	case <-c.Stop().Done():
		rm.logger.Info("Retention scheduler stopped", nil)
	case <-ctx.Done():
		rm.logger.Warn("Retention scheduler stop timed out", map[string]interface{}{
			"error": ctx.Err().Error(),
		})
	}
}

// RunOnce prunes immediately. A non-positive retention keeps everything.
func (rm *RetentionManager) RunOnce(ctx context.Context) (database.PruneResult, error) {
	start := time.Now()
	result, err := rm.pruner.PruneOlderThan(ctx, rm.days)
	if err != nil {
		return database.PruneResult{}, fmt.Errorf("failed to prune old data: %w", err)
	}

	rm.mu.Lock()
	rm.lastRun = start
	rm.last = result
	rm.mu.Unlock()

	rm.logger.Info("Old data cleared", map[string]interface{}{
		"retain_days":   rm.days,
		"weather_logs":  result.WeatherLogs,
		"user_searches": result.UserSearches,
		"system_logs":   result.SystemLogs,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	return result, nil
}

// Running reports whether the scheduler is started
func (rm *RetentionManager) Running() bool {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.cron != nil
}

// NextRun returns the next scheduled prune, zero when stopped
func (rm *RetentionManager) NextRun() time.Time {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.cron == nil {
		return time.Time{}
	}
	return rm.cron.Entry(rm.entryID).Next
}

// LastRun returns when the last prune started and what it removed
func (rm *RetentionManager) LastRun() (time.Time, database.PruneResult) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.lastRun, rm.last
}
