package health_test

import (
	"airline/infras/otel/mocks"
	"airline/internal/handlers/health"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func up(context.Context) error { return nil }

func down(context.Context) error { return errors.New("connection refused") }

func serve(handler *health.Handler) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	return rec
}

func TestHealth(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		rec := serve(health.NewWithChecks(map[string]health.Check{"postgres": up, "redis": up}, mocks.NewOtel()))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data health.Status `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Data.Status)
		assert.Equal(t, "up", body.Data.Dependencies["postgres"])
	})

	t.Run("a dependency down", func(t *testing.T) {
		rec := serve(health.NewWithChecks(map[string]health.Check{"postgres": down, "redis": up}, mocks.NewOtel()))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("draining", func(t *testing.T) {
		handler := health.NewWithChecks(map[string]health.Check{"postgres": up}, mocks.NewOtel())
		handler.Drain()

		rec := serve(handler)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SHUT DOWN")
	})
}
