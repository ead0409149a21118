package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Now()

func TestHealth(t *testing.T) {
	r := chi.NewRouter()
	NewHealthHandler("kanizsa-users", time.Now().Add(-time.Minute)).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Data["status"])
	assert.Equal(t, "kanizsa-users", body.Data["service"])
	assert.Equal(t, "1m0s", body.Data["uptime"])
	assert.NotZero(t, body.Data["timestamp"])
}

func TestIndexListsEndpoints(t *testing.T) {
	r := chi.NewRouter()
	NewHealthHandler("kanizsa-users", testStart).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Service   string            `json:"service"`
			Version   string            `json:"version"`
			Endpoints map[string]string `json:"endpoints"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, Version, body.Data.Version)
	assert.Equal(t, "/auth/login", body.Data.Endpoints["login"])
	assert.Equal(t, "/users/profile", body.Data.Endpoints["profile"])
}
