//go:build wireinject
// +build wireinject

package di

import (
	"airline/config"
	"airline/infras/jwt"
	"airline/infras/kafka"
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/infras/redis"
	authService "airline/internal/domains/auth/service"
	flightRepository "airline/internal/domains/flight/repository"
	flightService "airline/internal/domains/flight/service"
	reservationRepository "airline/internal/domains/reservation/repository"
	reservationService "airline/internal/domains/reservation/service"
	seatRepository "airline/internal/domains/seat/repository"
	seatService "airline/internal/domains/seat/service"
	userRepository "airline/internal/domains/user/repository"
	authHandler "airline/internal/handlers/auth"
	eventHandler "airline/internal/handlers/event"
	flightHandler "airline/internal/handlers/flight"
	healthHandler "airline/internal/handlers/health"
	reservationHandler "airline/internal/handlers/reservation"
	seatHandler "airline/internal/handlers/seat"
	"airline/permissions"
	"airline/shared/cache"
	"airline/transport/http"
	"airline/transport/http/middleware"
	"airline/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var seatDomain = wire.NewSet(
	seatRepository.New,
	seatService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	authDomain,
	flightDomain,
	seatDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	flightHandler.New,
	seatHandler.New,
	reservationHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// Consumer bundles what the event consumer process needs.
type Consumer struct {
	Config  *config.Config
	Kafka   kafka.Client
	Otel    otel.Otel
	Handler eventHandler.Handler
}

func InitializeConsumer() Consumer {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		eventHandler.New,
		wire.Struct(new(Consumer), "*"),
	)

	return Consumer{}
}
