package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func checkHealth(t *testing.T, h *HealthHandler) (dto.HealthResponse, string) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/api/health", h.Check)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return body, string(raw)
}

func TestHealthCheckOK(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	body, _ := checkHealth(t, NewHealthHandler(db, stubPinger{}))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.DB)
	assert.Equal(t, "ok", body.Cache)
	assert.NotEmpty(t, body.Timestamp)
}

func TestHealthCheckHidesDependencyErrors(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Close(db))

	cacheErr := errors.New("dial tcp 10.0.0.7:6379: connection refused")
	body, raw := checkHealth(t, NewHealthHandler(db, stubPinger{err: cacheErr}))

	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unhealthy", body.DB)
	assert.Equal(t, "unhealthy", body.Cache)
	assert.NotContains(t, raw, "10.0.0.7")
	assert.NotContains(t, raw, "closed")
}
