package middleware_test

import (
	"airline/config"
	otelMocks "airline/infras/otel/mocks"
	cacheMocks "airline/shared/cache/mocks"
	"airline/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, enable bool) (*cacheMocks.MockRedisCache, middleware.AppMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	return cache, middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, app := newApp(t, false)

		res := httptest.NewRecorder()
		app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("within the window", func(t *testing.T) {
		cache, app := newApp(t, true)

		cache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1", 60).Return(int64(2), nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")

		res := httptest.NewRecorder()
		app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "0", res.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		cache, app := newApp(t, true)

		cache.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(3), nil)

		res := httptest.NewRecorder()
		app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, res.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		cache, app := newApp(t, true)

		cache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))

		res := httptest.NewRecorder()
		app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestTracingAndLogger(t *testing.T) {
	_, app := newApp(t, false)

	handler := app.Tracing(app.Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/flights", nil))

	assert.Equal(t, http.StatusTeapot, res.Code)
}
