package apperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNotFound            = errors.New("not found")
)

// Upstream failure kinds
const (
	KindNetwork    = "network"
	KindAuth       = "auth"
	KindRateLimit  = "rate_limit"
	KindHTTPStatus = "http_status"
	KindMalformed  = "malformed"
	KindNoAPIKey   = "no_api_key"
)

// InvalidInputError is returned when a query string is empty or malformed.
// It is the only error callers are expected to surface to the user.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInput creates an InvalidInputError
func InvalidInput(field, value, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// UpstreamUnavailableError describes a failed call to an external service.
type UpstreamUnavailableError struct {
	Service    string
	Kind       string
	StatusCode int
	Err        error
}

func (e *UpstreamUnavailableError) Error() string {
	msg := fmt.Sprintf("%s unavailable (%s", e.Service, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status %d", e.StatusCode)
	}
	msg += ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

func (e *UpstreamUnavailableError) Is(target error) bool { return target == ErrUpstreamUnavailable }

// Upstream creates an UpstreamUnavailableError
func Upstream(service, kind string, status int, err error) error {
	return &UpstreamUnavailableError{Service: service, Kind: kind, StatusCode: status, Err: err}
}

// NotFoundError is a lookup miss for a named entity.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound creates a NotFoundError
func NotFound(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

// IsRecoverable reports whether err is handled locally by degrading to demo
// or placeholder data instead of being surfaced.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrNotFound)
}

// Classify returns a short string classification of err for logs and storage
func Classify(err error) string {
	if err == nil {
		return "unknown"
	}

	var upstream *UpstreamUnavailableError
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &upstream):
		return upstream.Kind
	case IsNetworkError(err):
		return KindNetwork
	}

	errorStr := strings.ToLower(err.Error())
	if strings.Contains(errorStr, "sqlite") || strings.Contains(errorStr, "sql") ||
		strings.Contains(errorStr, "database") || strings.Contains(errorStr, "constraint") {
		return "database"
	}

	return "unknown"
}

// IsNetworkError checks if an error is network-related
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errorStr := strings.ToLower(err.Error())
	networkPatterns := []string{
		"connection refused",
		"connection reset",
		"network unreachable",
		"host unreachable",
		"no route to host",
		"no such host",
		"timeout",
		"dial tcp",
		"broken pipe",
		"eof",
	}

	for _, pattern := range networkPatterns {
		if strings.Contains(errorStr, pattern) {
			return true
		}
	}

	return false
}
