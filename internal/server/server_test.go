package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/intel"
	"github.com/latoulicious/weather-dominator/pkg/intel/seed"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/latoulicious/weather-dominator/pkg/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStats struct{}

func (failingStats) Stats(ctx context.Context) (*database.Stats, error) {
	return nil, errors.New("sql: database is closed")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerOn(t, ":0")
}

func newTestServerOn(t *testing.T, addr string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logging.NewZapLoggerFrom("server", zap.NewNop())

	db, err := database.NewGormDB(database.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migration.RunMigration(db, logger))

	store := intel.NewStore(db, nil, "", logger)
	_, err = store.Seed(context.Background(), seed.Default())
	require.NoError(t, err)

	weatherService := weather.NewService(weather.NewClient(weather.Options{}, logger), nil, nil, "", logger)
	return New(addr, weatherService, store, database.NewManager(db), logger)
}

func get(t *testing.T, s *Server, path string, out interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	var body map[string]interface{}
	assert.Equal(t, http.StatusOK, get(t, s, "/health", &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestWeatherWithoutKeyServesDemo(t *testing.T) {
	s := newTestServer(t)

	var body map[string]interface{}
	require.Equal(t, http.StatusOK, get(t, s, "/api/weather?city=COBRA%20Command", &body))
	assert.Equal(t, "demo", body["source"])
	assert.Equal(t, "COBRA Command", body["city"])
	assert.NotEmpty(t, body["condition"])
}

func TestWeatherRejectsEmptyCity(t *testing.T) {
	s := newTestServer(t)

	var body ErrorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/weather?city=%20%20", &body))
	assert.Equal(t, "invalid_input", body.Kind)
	assert.NotEmpty(t, body.Error)
}

func TestCharacterEndpoint(t *testing.T) {
	s := newTestServer(t)

	var duke intel.CharacterProfile
	require.Equal(t, http.StatusOK, get(t, s, "/api/characters/duke", &duke))
	assert.Equal(t, "G.I. Joe", duke.Faction)
	require.Len(t, duke.Vehicles, 1)
	assert.Equal(t, "VAMP", duke.Vehicles[0].Name)

	var unknown intel.CharacterProfile
	require.Equal(t, http.StatusOK, get(t, s, "/api/characters/Zzyzx%20Test%20Name", &unknown))
	assert.True(t, unknown.Placeholder)
	assert.Equal(t, "unknown", unknown.Status)
}

func TestCharacterListByFaction(t *testing.T) {
	s := newTestServer(t)

	var body struct {
		Count      int                     `json:"count"`
		Characters []intel.CharacterRecord `json:"characters"`
	}
	require.Equal(t, http.StatusOK, get(t, s, "/api/characters?faction=G.I.%20Joe", &body))
	assert.Equal(t, 7, body.Count)
	assert.Equal(t, "Duke", body.Characters[0].Name)
}

func TestArsenalEndpoints(t *testing.T) {
	s := newTestServer(t)

	var vehicle intel.VehicleProfile
	require.Equal(t, http.StatusOK, get(t, s, "/api/vehicles/HISS%20Tank", &vehicle))
	require.Len(t, vehicle.Characters, 1)
	assert.Equal(t, "Cobra Commander", vehicle.Characters[0].Name)

	var weapon intel.WeaponProfile
	require.Equal(t, http.StatusOK, get(t, s, "/api/weapons/crossbow", &weapon))
	assert.Equal(t, "Scarlett", weapon.Characters[0].Name)

	var location intel.LocationRecord
	require.Equal(t, http.StatusOK, get(t, s, "/api/locations/the%20pit", &location))
	assert.Equal(t, "Utah Desert, USA", location.Location)
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)

	var results intel.SearchResults
	require.Equal(t, http.StatusOK, get(t, s, "/api/search?q=katana", &results))
	require.Len(t, results.Weapons, 1)

	var body ErrorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/search", &body))
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)

	var stats database.Stats
	require.Equal(t, http.StatusOK, get(t, s, "/api/stats", &stats))
	assert.Equal(t, int64(14), stats.Characters)
	assert.Equal(t, int64(4), stats.WeaponRelations)
}

func TestStatsFailureIsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewZapLoggerFrom("server", zap.NewNop())
	s := New(":0", nil, nil, failingStats{}, logger)

	var body ErrorResponse
	assert.Equal(t, http.StatusInternalServerError, get(t, s, "/api/stats", &body))
	assert.Equal(t, "database", body.Kind)
}

func TestStartServesAndShutsDown(t *testing.T) {
	s := newTestServerOn(t, "127.0.0.1:0")
	require.NoError(t, s.Start())

	resp, err := http.Get("http://" + s.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Shutdown(context.Background()))
	_, open := <-s.Err()
	assert.False(t, open)
}

func TestStartReturnsBindFailure(t *testing.T) {
	first := newTestServerOn(t, "127.0.0.1:0")
	require.NoError(t, first.Start())
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	second := newTestServerOn(t, first.Addr().String())
	err := second.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
