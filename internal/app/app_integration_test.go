//go:build integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize app with MongoDB enabled", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Cache: config.CacheConfig{
				Size:   1000,
				TTL:    5 * time.Minute,
				Shards: 16,
			},
			Engine: config.EngineConfig{
				SeedPresets: true,
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   dbName,
				LogsTTL:                        30 * 24 * time.Hour,
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		application := InitializeApp(cfg)
		require.NotNil(t, application)
		defer application.Close()

		assert.NotNil(t, application.Router)

		// Seeded presets must resolve by name end to end
		body := `{
			"products": [{"product": {"name": "Olive oil case", "dimensions": {"length": 40, "width": 30, "height": 25, "unit": "cm"}, "weight": 9.6}, "quantity": 10}],
			"container_preset": "20ft Standard",
			"pallet_preset": "EUR-1"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("initialize app with MongoDB disabled", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server: config.ServerConfig{
				Port: "8080",
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		application := InitializeApp(cfg)
		require.NotNil(t, application)
		defer application.Close()

		assert.NotNil(t, application.Router)

		// Built-in presets still serve optimize requests without storage
		req := httptest.NewRequest(http.MethodGet, "/api/v1/presets/containers", nil)
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "20ft Standard")
	})

	t.Run("readiness reports registered breakers", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.Config{
			Server: config.ServerConfig{
				Port: "8080",
			},
			Engine: config.EngineConfig{
				SeedPresets: true,
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   dbName,
				LogsTTL:                        30 * 24 * time.Hour,
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		application := InitializeApp(cfg)
		require.NotNil(t, application)
		defer application.Close()

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb_presets_circuit")
		assert.Contains(t, w.Body.String(), "mongodb_quotes_circuit")
	})
}
