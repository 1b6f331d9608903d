package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Seat=MockSeatService

import (
	"airline/infras/otel"
	flightModel "airline/internal/domains/flight/model"
	flightRepo "airline/internal/domains/flight/repository"
	"airline/internal/domains/seat/model/dto"
	"airline/internal/domains/seat/repository"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var errInvalidFlightID = &failure.Failure{Code: 400, Message: "invalid flight id"}

type Seat interface {
	ListWithAvailability(ctx context.Context, flightID string) ([]dto.SeatResponse, error)
	CreateSeats(ctx context.Context, flightID string, req dto.CreateSeatsRequest) ([]dto.SeatResponse, error)
}

type serviceImpl struct {
	repo       repository.Seat
	flightRepo flightRepo.Flight
	otel       otel.Otel
}

func New(repo repository.Seat, flightRepo flightRepo.Flight, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:       repo,
		flightRepo: flightRepo,
		otel:       otel,
	}
}

// ListWithAvailability returns every seat of the flight with its booking state.
// An unknown flight, including an id that cannot name any flight, yields an empty list.
func (s *serviceImpl) ListWithAvailability(ctx context.Context, flightID string) (res []dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListWithAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(flightID, "required,uuid") != nil {
		return []dto.SeatResponse{}, nil
	}

	seats, err := s.repo.ListWithAvailability(ctx, flightID)
	if err != nil {
		log.Error().Err(err).Str("flight_id", flightID).Msg("failed to list seats")

		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	return dto.FromAvailabilities(seats), nil
}

func (s *serviceImpl) CreateSeats(ctx context.Context, flightID string, req dto.CreateSeatsRequest) (res []dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(flightID, "required,uuid"); err != nil {
		return nil, errInvalidFlightID
	}

	exists, err := s.flightRepo.Exist(ctx, shared.FilterByID(flightID, flightModel.FieldID, flightModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight")

		return nil, fmt.Errorf("failed to check flight: %w", err)
	}

	if !exists {
		return nil, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	seats := req.ToModels(flightID)

	if err = s.repo.InsertBulk(ctx, seats); err != nil {
		switch shared.PqErrorCode(err) {
		case constant.PqErrorCodeUniqueViolation:
			return nil, failure.Conflict("seat number already exists on this flight") // nolint:wrapcheck
		case constant.PqErrorCodeFkViolation:
			return nil, failure.NotFound("flight not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create seats")

		return nil, fmt.Errorf("failed to create seats: %w", err)
	}

	log.Info().Str("flight_id", flightID).Int("count", len(seats)).Msg("seats created")

	return dto.FromModels(seats), nil
}
