package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/intel"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/latoulicious/weather-dominator/pkg/weather"
)

// WeatherLookup returns a weather report for a city
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (*weather.Report, error)
}

// StatsProvider returns per-table counts
type StatsProvider interface {
	Stats(ctx context.Context) (*database.Stats, error)
}

// Server is the JSON API over the weather client and the lookup store
type Server struct {
	weather WeatherLookup
	intel   intel.Lookup
	stats   StatsProvider
	logger  logging.Logger
	started time.Time

	engine *gin.Engine
	http   *http.Server
	addr   net.Addr
	errs   chan error
}

// New builds the router. stats may be nil.
func New(addr string, weatherLookup WeatherLookup, store intel.Lookup, stats StatsProvider, logger logging.Logger) *Server {
	s := &Server{
		weather: weatherLookup,
		intel:   store,
		stats:   stats,
		logger:  logger,
		started: time.Now(),
	}
	s.engine = s.setupRouter()
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.errs = make(chan error, 1)
	return s
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start binds the listen address and serves in the background. Bind
// failures are returned; a later serve failure is logged and sent on Err.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	s.addr = ln.Addr()

	s.logger.Info("Starting API server", map[string]interface{}{
		"addr": s.addr.String(),
	})
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", err, map[string]interface{}{
				"addr": s.addr.String(),
			})
			s.errs <- err
		}
		close(s.errs)
	}()
	return nil
}

// Addr returns the bound address once Start has succeeded
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Err delivers a serve failure, or is closed after a clean shutdown
func (s *Server) Err() <-chan error {
	return s.errs
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	s.logger.Info("API server shutdown complete", nil)
	return nil
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/weather", s.getWeather)
	api.GET("/characters", s.listCharacters)
	api.GET("/characters/:name", s.getCharacter)
	api.GET("/vehicles/:name", s.getVehicle)
	api.GET("/weapons/:name", s.getWeapon)
	api.GET("/locations/:name", s.getLocation)
	api.GET("/search", s.search)
	api.GET("/stats", s.getStats)

	return r
}

// requestLogger logs each request at debug level, failures at warn
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.logger.Warn("Request failed", fields)
			return
		}
		s.logger.Debug("Request served", fields)
	}
}
