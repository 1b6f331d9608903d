package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Flight=MockFlightService

import (
	"airline/config"
	"airline/infras/otel"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/repository"
	"airline/internal/policy"
	"airline/shared"
	"airline/shared/cache"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight    = "flight:get"
	cacheGetAllFlight = "flight:list"
	cacheCountFlight  = "flight:count"
)

var sortableColumns = []string{model.FieldDepartureTime, model.FieldArrivalTime, constant.FieldCreatedAt}

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) (dto.FlightResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFlightsResponse, error)
	Get(ctx context.Context, id string) (dto.FlightResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Flight
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flight := req.ToModel(policy.Actor(ctx))

	if err = s.repo.Insert(ctx, flight); err != nil {
		switch shared.PqErrorCode(err) {
		case constant.PqErrorCodeFkViolation:
			return res, failure.BadRequestFromString("aircraft or airport does not exist") // nolint:wrapcheck
		case constant.PqErrorCodeCheckViolation:
			return res, failure.BadRequestFromString("departure must precede arrival and airports must differ") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create flight")

		return res, fmt.Errorf("failed to create flight: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldDepartureTime, sortableColumns...)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFlight, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flights")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights")

		return res, fmt.Errorf("failed to count flights: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save flights to cache")
	}

	return res, nil
}

// count is cached apart from the pages so every page of one search shares it.
func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFlight, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return 0, err // nolint:wrapcheck
	}

	if err := s.cache.Save(ctx, cacheKey, total, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save flight count to cache")
	}

	return total, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllFlight)
	shared.InvalidateCaches(ctx, s.cache, cacheCountFlight)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(id, "required,uuid"); err != nil {
		return res, failure.BadRequestFromString("invalid flight id") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetFlight, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight")

		return res, nil
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == constant.Empty {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	res.FromModel(flight)

	// saved before returning so a later Delete always evicts it
	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save flight to cache")
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(id, "required,uuid"); err != nil {
		return failure.BadRequestFromString("invalid flight id") // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("flight still has seats or reservations") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
		log.Error().Err(err).Msg("failed to evict flight from cache")
	}

	s.invalidateLists(ctx)

	return nil
}
