package logging

// DatabaseLogger wraps a base logger and persists WARN and ERROR entries.
// Persistence is synchronous: a CLI invocation may exit right after logging.
type DatabaseLogger struct {
	base       Logger
	component  string
	context    map[string]interface{}
	repository LogRepository
}

// NewDatabaseLogger creates a new database-backed logger
func NewDatabaseLogger(base Logger, component string, repository LogRepository) *DatabaseLogger {
	return &DatabaseLogger{
		base:       base,
		component:  component,
		context:    make(map[string]interface{}),
		repository: repository,
	}
}

// Info logs informational messages
func (d *DatabaseLogger) Info(msg string, fields map[string]interface{}) {
	d.base.Info(msg, fields)
}

// Error logs error messages and persists them
func (d *DatabaseLogger) Error(msg string, err error, fields map[string]interface{}) {
	d.base.Error(msg, err, fields)
	d.persistLog("ERROR", msg, err, fields)
}

// Warn logs warning messages and persists them
func (d *DatabaseLogger) Warn(msg string, fields map[string]interface{}) {
	d.base.Warn(msg, fields)
	d.persistLog("WARN", msg, nil, fields)
}

// Debug logs debug messages
func (d *DatabaseLogger) Debug(msg string, fields map[string]interface{}) {
	d.base.Debug(msg, fields)
}

// WithPipeline creates a new logger with pipeline context
func (d *DatabaseLogger) WithPipeline(pipeline string) Logger {
	return d.WithContext(map[string]interface{}{"pipeline": pipeline})
}

// WithContext creates a new logger with additional context fields
func (d *DatabaseLogger) WithContext(ctx map[string]interface{}) Logger {
	newContext := make(map[string]interface{}, len(d.context)+len(ctx))
	for k, v := range d.context {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &DatabaseLogger{
		base:       d.base.WithContext(ctx),
		component:  d.component,
		context:    newContext,
		repository: d.repository,
	}
}

func (d *DatabaseLogger) persistLog(level, message string, err error, fields map[string]interface{}) {
	if d.repository == nil {
		return
	}

	allFields := make(map[string]interface{}, len(d.context)+len(fields))
	for k, v := range d.context {
		allFields[k] = v
	}
	for k, v := range fields {
		allFields[k] = v
	}

	entry := LogEntry{
		Component: d.component,
		Level:     level,
		Message:   message,
		Fields:    allFields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if sessionID, ok := allFields["session_id"].(string); ok {
		entry.SessionID = sessionID
	}

	if saveErr := d.repository.SaveLog(entry); saveErr != nil {
		// base logger only, so a broken store cannot recurse
		d.base.Error("Failed to persist log to database", saveErr, map[string]interface{}{
			"original_message": message,
			"original_level":   level,
		})
	}
}
