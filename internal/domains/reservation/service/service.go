package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"airline/config"
	"airline/infras/kafka"
	"airline/infras/otel"
	"airline/internal/domains/reservation/model"
	"airline/internal/domains/reservation/model/dto"
	"airline/internal/domains/reservation/repository"
	"airline/internal/policy"
	"airline/shared"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/timezone"
	"airline/shared/validator"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

var (
	ErrSeatAlreadyBooked   = &failure.Failure{Code: http.StatusBadRequest, Message: "seat already booked"}
	ErrSeatNotFound        = &failure.Failure{Code: http.StatusNotFound, Message: "seat not found"}
	ErrReservationNotFound = &failure.Failure{Code: http.StatusNotFound, Message: "reservation not found"}
	errInvalidID           = &failure.Failure{Code: http.StatusBadRequest, Message: "invalid reservation id"}
)

var sortableColumns = []string{model.FieldBookingTime}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
	AdminDelete(ctx context.Context, id string) error
	ListMine(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Reservation, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// Create books a seat for the caller. Checks run in a fixed order: authentication, the admin
// exclusion, request shape, then the transactional seat checks in the repository.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := policy.IsAuthenticated(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = policy.CanBook(principal); err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	reservation, err := s.repo.Book(ctx, req.ToModel(principal.UserID))

	switch {
	case errors.Is(err, repository.ErrSeatNotFound):
		return res, ErrSeatNotFound
	case errors.Is(err, repository.ErrSeatTaken):
		log.Info().Str("seat_id", req.SeatID).Str("user_id", principal.UserID).Msg("seat already booked")

		return res, ErrSeatAlreadyBooked
	case err != nil:
		log.Error().Err(err).Str("seat_id", req.SeatID).Msg("failed to book seat")

		return res, fmt.Errorf("failed to book seat: %w", err)
	}

	s.publish(ctx, dto.EventReservationCreated, principal.UserID, reservation)

	res.FromModel(reservation)

	return res, nil
}

// Delete cancels one of the caller's own reservations. Reservations of other users are
// reported as missing.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := policy.AccountHolder(ctx)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if err = validator.ValidateVar(id, "required,uuid"); err != nil {
		return errInvalidID
	}

	filter := gDto.And(
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldUserID, Value: principal.UserID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	return s.release(ctx, principal, filter)
}

// AdminDelete cancels any reservation regardless of owner.
func (s *serviceImpl) AdminDelete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminDelete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := policy.IsAuthenticated(ctx)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if !policy.IsAdmin(principal) {
		return failure.ForbiddenError
	}

	if err = validator.ValidateVar(id, "required,uuid"); err != nil {
		return errInvalidID
	}

	return s.release(ctx, principal, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) release(ctx context.Context, principal policy.Principal, filter gDto.FilterGroup) error {
	reservation, err := s.repo.Release(ctx, filter)
	if errors.Is(err, repository.ErrReservationNotFound) {
		return ErrReservationNotFound
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to release reservation")

		return fmt.Errorf("failed to release reservation: %w", err)
	}

	if !policy.IsOwner(reservation.UserID, principal) {
		log.Info().Str("reservation_id", reservation.ID).Str("owner_id", reservation.UserID).
			Str("actor", principal.UserID).Msg("reservation cancelled on behalf of owner")
	}

	s.publish(ctx, dto.EventReservationCancelled, principal.UserID, reservation)

	return nil
}

func (s *serviceImpl) ListMine(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := policy.AccountHolder(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.list(ctx, params, shared.FilterByID(principal.UserID, model.FieldUserID, model.TableName))
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	params.RestrictSort(model.FieldBookingTime, sortableColumns...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// publish sends the event after commit without holding up the caller. Delivery failures are only logged.
func (s *serviceImpl) publish(ctx context.Context, eventType, actor string, reservation model.Reservation) {
	if !s.kafka.Enabled() {
		return
	}

	event := dto.NewReservationEvent(eventType, actor, reservation, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := s.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
		defer scope.End()

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Reservation, kafka.Message{Key: reservation.SeatID, Value: event})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("event", eventType).Str("reservation_id", reservation.ID).Msg("failed to publish reservation event")
		}
	}()
}
