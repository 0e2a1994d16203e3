package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryRepository struct {
	entries []LogEntry
	err     error
}

func (m *memoryRepository) SaveLog(entry LogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func newObserved(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func fieldMap(entry observer.LoggedEntry) map[string]interface{} {
	return entry.ContextMap()
}

func TestZapLoggerPrefixesComponentAndMergesContext(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	logger := NewZapLoggerFrom("weather", zl).WithContext(map[string]interface{}{"city": "Tokyo"})

	logger.Info("Fetched weather", map[string]interface{}{"source": "live"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "[weather] Fetched weather", entry.Message)
	fields := fieldMap(entry)
	assert.Equal(t, "Tokyo", fields["city"])
	assert.Equal(t, "live", fields["source"])
}

func TestZapLoggerErrorAttachesError(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	NewZapLoggerFrom("intel", zl).Error("Seed failed", errors.New("disk full"), nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, "disk full", fieldMap(logs.All()[0])["error"])
}

func TestWithContextDoesNotLeakIntoParent(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	parent := NewZapLoggerFrom("intel", zl)
	_ = parent.WithContext(map[string]interface{}{"name": "Duke"})

	parent.Info("lookup", nil)

	require.Equal(t, 1, logs.Len())
	_, ok := fieldMap(logs.All()[0])["name"]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestDatabaseLoggerPersistsOnlyWarnAndError(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	repo := &memoryRepository{}
	logger := NewDatabaseLogger(NewZapLoggerFrom("weather", zl), "weather", repo).
		WithContext(map[string]interface{}{"session_id": "abc"})

	logger.Info("ok", nil)
	logger.Debug("noise", nil)
	logger.Warn("demo fallback", map[string]interface{}{"kind": "auth"})
	logger.Error("upstream failed", errors.New("401"), nil)

	assert.Equal(t, 4, logs.Len())
	require.Len(t, repo.entries, 2)
	assert.Equal(t, "WARN", repo.entries[0].Level)
	assert.Equal(t, "auth", repo.entries[0].Fields["kind"])
	assert.Equal(t, "abc", repo.entries[0].SessionID)
	assert.Equal(t, "ERROR", repo.entries[1].Level)
	assert.Equal(t, "401", repo.entries[1].Error)
	assert.Equal(t, "weather", repo.entries[1].Component)
}

func TestDatabaseLoggerSaveFailureFallsBackToBase(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	repo := &memoryRepository{err: errors.New("locked")}
	NewDatabaseLogger(NewZapLoggerFrom("db", zl), "db", repo).Warn("slow", nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "[db] Failed to persist log to database", logs.All()[1].Message)
}

func TestFactoryCachesAndWrapsWithDatabaseLogger(t *testing.T) {
	zl, _ := newObserved(zapcore.DebugLevel)
	factory := NewFactoryFromZap(zl, Options{SaveToDB: true})

	first := factory.CreateLogger("intel")
	assert.Same(t, first, factory.CreateLogger("intel"))
	_, isDB := first.(*DatabaseLogger)
	assert.False(t, isDB, "no repository set yet")

	factory.SetRepository(&memoryRepository{})
	_, isDB = factory.CreateLogger("intel").(*DatabaseLogger)
	assert.True(t, isDB)
}

func TestCommandLoggerTagsCommandAndSession(t *testing.T) {
	zl, logs := newObserved(zapcore.DebugLevel)
	factory := NewFactoryFromZap(zl, Options{})

	logger := factory.CreateCommandLogger("lookup", "session-1")
	logger.Info("Character resolved", map[string]interface{}{"name": "Duke"})
	logger.WithPipeline("seed").Warn("Relation skipped", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "[commands] [lookup] Character resolved", entry.Message)
	fields := fieldMap(entry)
	assert.Equal(t, "lookup", fields["command"])
	assert.Equal(t, "session-1", fields["session_id"])
	assert.Equal(t, "Duke", fields["name"])

	staged := fieldMap(logs.All()[1])
	assert.Equal(t, "seed", staged["pipeline"])
	assert.Equal(t, "lookup", staged["command"])

	factory.CreateCommandLogger("stats", "").Debug("Counted", nil)
	_, hasSession := fieldMap(logs.All()[2])["session_id"]
	assert.False(t, hasSession)
}
