package logging

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	opts       Options
	root       *zap.Logger
	repository LogRepository
	loggers    map[string]Logger
	mu         sync.Mutex
}

// NewLoggerFactory creates a new logger factory. Invalid options fall back
// to an info-level production logger so a bad config never hides errors.
func NewLoggerFactory(opts Options) *DefaultLoggerFactory {
	base, err := NewZapLogger("root", opts)
	if err != nil {
		base, _ = NewZapLogger("root", Options{Format: opts.Format})
	}
	var root *zap.Logger
	if base != nil {
		root = base.logger
	}
	return newFactory(opts, root)
}

// NewFactoryFromZap builds a factory around an existing zap logger (tests, embedding)
func NewFactoryFromZap(logger *zap.Logger, opts Options) *DefaultLoggerFactory {
	return newFactory(opts, logger)
}

var _ LoggerFactory = (*DefaultLoggerFactory)(nil)

func newFactory(opts Options, root *zap.Logger) *DefaultLoggerFactory {
	if root == nil {
		root = zap.NewNop()
	}
	return &DefaultLoggerFactory{
		opts:    opts,
		root:    root,
		loggers: make(map[string]Logger),
	}
}

// SetRepository enables database persistence for loggers created afterwards
// when Options.SaveToDB is set.
func (f *DefaultLoggerFactory) SetRepository(repository LogRepository) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repository = repository
	f.loggers = make(map[string]Logger)
}

// CreateLogger creates a logger for the specified component
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	var logger Logger = NewZapLoggerFrom(component, f.root)
	if f.opts.SaveToDB && f.repository != nil {
		logger = NewDatabaseLogger(logger, component, f.repository)
	}

	f.loggers[component] = logger
	return logger
}

// CreateCommandLogger returns the "commands" logger tagged with one command
// run: messages get a "[name]" prefix, entries carry command and session_id.
func (f *DefaultLoggerFactory) CreateCommandLogger(commandName, sessionID string) Logger {
	fields := map[string]interface{}{"command": commandName}
	if sessionID != "" {
		fields["session_id"] = sessionID
	}
	return &commandLogger{
		base:    f.CreateLogger("commands").WithContext(fields),
		command: commandName,
	}
}

// Sync flushes the underlying zap logger. Errors from syncing a terminal
// (EINVAL/ENOTTY) are common and ignored by callers.
func (f *DefaultLoggerFactory) Sync() error {
	if f.root == nil {
		return errors.New("logger factory not initialized")
	}
	return f.root.Sync()
}

type commandLogger struct {
	base    Logger
	command string
}

func (c *commandLogger) Info(msg string, fields map[string]interface{}) {
	c.base.Info(c.tag(msg), fields)
}

func (c *commandLogger) Error(msg string, err error, fields map[string]interface{}) {
	c.base.Error(c.tag(msg), err, fields)
}

func (c *commandLogger) Warn(msg string, fields map[string]interface{}) {
	c.base.Warn(c.tag(msg), fields)
}

func (c *commandLogger) Debug(msg string, fields map[string]interface{}) {
	c.base.Debug(c.tag(msg), fields)
}

func (c *commandLogger) WithPipeline(pipeline string) Logger {
	return &commandLogger{base: c.base.WithPipeline(pipeline), command: c.command}
}

func (c *commandLogger) WithContext(ctx map[string]interface{}) Logger {
	return &commandLogger{base: c.base.WithContext(ctx), command: c.command}
}

func (c *commandLogger) tag(msg string) string {
	return "[" + c.command + "] " + msg
}
