// Package health reports whether the instance should receive traffic.
package health

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/shared/constant"
	"airline/transport/http/response"
	"context"
	"net/http"
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	checks   map[string]Check
	otel     otel.Otel
	draining atomic.Bool
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) *Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Write.PingContext,
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		},
	}, otel)
}

func NewWithChecks(checks map[string]Check, otel otel.Otel) *Handler {
	return &Handler{
		checks: checks,
		otel:   otel,
	}
}

// Drain makes the health check fail so load balancers stop routing here before shutdown.
func (handler *Handler) Drain() {
	handler.draining.Store(true)
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports dependency status.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if handler.draining.Load() {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(handler.checks))
	for name := range handler.checks {
		names = append(names, name)
	}

	sort.Strings(names)

	status := Status{Status: "ok", Dependencies: make(map[string]string, len(names))}

	for _, name := range names {
		if err := handler.checks[name](ctx); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")

			status.Dependencies[name] = "down"

			continue
		}

		status.Dependencies[name] = "up"
	}

	for _, state := range status.Dependencies {
		if state == "down" {
			response.WithUnhealthy(w)

			return
		}
	}

	response.WithJSON(w, http.StatusOK, status)
}
