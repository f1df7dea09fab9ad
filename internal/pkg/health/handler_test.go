package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/database"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
	assert.True(t, DefaultBuildInfo.ServerTime.IsZero())
}

func TestNewPingHandler(t *testing.T) {
	envVars := []string{"GIT_COMMIT", "BUILD_TIME"}
	originalEnv := make(map[string]string)
	for _, envVar := range envVars {
		if val, exists := os.LookupEnv(envVar); exists {
			originalEnv[envVar] = val
		}
		os.Unsetenv(envVar)
	}
	defer func() {
		for _, envVar := range envVars {
			os.Unsetenv(envVar)
			if val, exists := originalEnv[envVar]; exists {
				os.Setenv(envVar, val)
			}
		}
	}()

	t.Run("Default ping handler", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		require.NoError(t, NewPingHandler("movecar", "")(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "movecar", response.ServiceName)
		assert.Equal(t, "development", response.Version)
		assert.Equal(t, "unknown", response.GitCommit)
		assert.NotEmpty(t, response.Hostname)
		assert.False(t, response.ServerTime.IsZero())
	})

	t.Run("Ping handler with version and build env", func(t *testing.T) {
		os.Setenv("GIT_COMMIT", "def456")
		os.Setenv("BUILD_TIME", "2023-06-01T12:00:00Z")

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		require.NoError(t, NewPingHandler("movecar", "2.0.0")(c))

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "2.0.0", response.Version)
		assert.Equal(t, "def456", response.GitCommit)
		assert.Equal(t, "2023-06-01T12:00:00Z", response.BuildTime)
	})

	t.Run("Multiple calls return updated server time", func(t *testing.T) {
		e := echo.New()
		handler := NewPingHandler("movecar", "")

		rec1 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec1)))
		time.Sleep(10 * time.Millisecond)
		rec2 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec2)))

		var response1, response2 BuildInfo
		require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &response1))
		require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &response2))
		assert.True(t, response2.ServerTime.After(response1.ServerTime))
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	t.Run("liveness endpoints", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "movecar", "1.0.0", NewHealthService(logger.NewNopLogger()))

		for _, path := range []string{"/health", "/healthz"} {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.Equal(t, "OK", rec.Body.String(), path)
		}

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ready with healthy store", func(t *testing.T) {
		hs := NewHealthService(logger.NewNopLogger())
		hs.AddChecker("store", NewPingChecker(database.NewMemoryStore()))

		e := echo.New()
		RegisterHealthEndpoints(e, "movecar", "1.0.0", hs)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, StatusHealthy, response.Status)
		assert.Equal(t, "movecar", response.Service)
		assert.Equal(t, StatusHealthy, response.Dependencies["store"].Status)
	})

	t.Run("ready with failing dependency", func(t *testing.T) {
		hs := NewHealthService(logger.NewNopLogger())
		hs.AddChecker("store", NewPingChecker(database.NewMemoryStore()))
		hs.AddChecker("nsq", NewPingChecker(failingPinger{}))

		e := echo.New()
		RegisterHealthEndpoints(e, "movecar", "1.0.0", hs)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, StatusUnhealthy, response.Status)
		assert.Equal(t, "connection refused", response.Dependencies["nsq"].Error)
		assert.Equal(t, StatusHealthy, response.Dependencies["store"].Status)
	})
}

func TestPingChecker_NilTarget(t *testing.T) {
	assert.NoError(t, NewPingChecker(nil).CheckHealth(context.Background()))
}
