package weather

import (
	"context"

	"github.com/latoulicious/weather-dominator/pkg/logging"
)

// Recorder stores served weather records
type Recorder interface {
	RecordWeather(ctx context.Context, record *Record) error
}

// SearchRecorder stores user queries
type SearchRecorder interface {
	RecordSearch(ctx context.Context, searchType, query string, resultsFound int, sessionID string) error
}

// Report is a weather record plus the severe conditions it triggers
type Report struct {
	*Record
	Severe []string `json:"severe,omitempty"`
}

// Service wraps a Fetcher with history recording and severe weather checks
type Service struct {
	fetcher   Fetcher
	recorder  Recorder
	searches  SearchRecorder
	sessionID string
	logger    logging.Logger
}

// NewService creates a weather service. recorder and searches may be nil.
func NewService(fetcher Fetcher, recorder Recorder, searches SearchRecorder, sessionID string, logger logging.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		recorder:  recorder,
		searches:  searches,
		sessionID: sessionID,
		logger:    logger,
	}
}

// Lookup fetches the weather for city and records the query. Recording
// failures are logged and never returned.
func (s *Service) Lookup(ctx context.Context, city string) (*Report, error) {
	record, err := s.fetcher.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Record: record,
		Severe: CheckSevere(record),
	}

	if len(report.Severe) > 0 {
		s.logger.Warn("Severe weather detected", map[string]interface{}{
			"city":       record.City,
			"conditions": report.Severe,
			"source":     string(record.Source),
		})
	}

	s.record(ctx, city, record)
	return report, nil
}

func (s *Service) record(ctx context.Context, query string, record *Record) {
	if s.recorder != nil {
		if err := s.recorder.RecordWeather(ctx, record); err != nil {
			s.logger.Error("Failed to record weather", err, map[string]interface{}{
				"city": record.City,
			})
		}
	}

	if s.searches != nil {
		found := 0
		if record.Source == SourceLive {
			found = 1
		}
		if err := s.searches.RecordSearch(ctx, "weather", query, found, s.sessionID); err != nil {
			s.logger.Error("Failed to record weather search", err, map[string]interface{}{
				"query": query,
			})
		}
	}
}
