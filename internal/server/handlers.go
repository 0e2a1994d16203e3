package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/latoulicious/weather-dominator/pkg/apperrors"
)

// ErrorResponse is the body of every non-200 reply
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"uptime":     time.Since(s.started).Round(time.Second).String(),
		"start_time": s.started.Format(time.RFC3339),
	})
}

func (s *Server) getWeather(c *gin.Context) {
	report, err := s.weather.Lookup(c.Request.Context(), c.Query("city"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) getCharacter(c *gin.Context) {
	profile, err := s.intel.Character(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) listCharacters(c *gin.Context) {
	records, err := s.intel.ListCharacters(c.Request.Context(), c.Query("faction"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"faction":    c.Query("faction"),
		"count":      len(records),
		"characters": records,
	})
}

func (s *Server) getVehicle(c *gin.Context) {
	profile, err := s.intel.Vehicle(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) getWeapon(c *gin.Context) {
	profile, err := s.intel.Weapon(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) getLocation(c *gin.Context) {
	record, err := s.intel.Location(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) search(c *gin.Context) {
	results, err := s.intel.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) getStats(c *gin.Context) {
	if s.stats == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "statistics unavailable", Kind: "unavailable"})
		return
	}
	stats, err := s.stats.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// fail maps invalid input to 400; anything else reaching here is a storage
// or internal failure
func (s *Server) fail(c *gin.Context, err error) {
	kind := apperrors.Classify(err)
	if errors.Is(err, apperrors.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: kind})
		return
	}

	s.logger.Error("Request failed", err, map[string]interface{}{
		"path": c.FullPath(),
		"kind": kind,
	})
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Kind: kind})
}
