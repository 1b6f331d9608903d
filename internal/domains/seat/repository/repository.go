package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/seat/model"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/logger"
	gRepo "airline/shared/repository"
	"context"
	"fmt"
)

// availabilityQuery derives is_booked from the reservation rows rather than the seats.is_booked flag.
// Seats order by their numeric row first so that 2A precedes 10A.
const availabilityQuery = `SELECT seats.id AS seat_id, seats.flight_id, seats.seat_number, (reservations.id IS NOT NULL) AS is_booked ` +
	`FROM seats LEFT JOIN reservations ON reservations.seat_id = seats.id ` +
	`WHERE seats.flight_id = :flight_id ` +
	`ORDER BY CAST(SUBSTRING(seats.seat_number FROM '^[0-9]+') AS INTEGER), seats.seat_number`

type Seat interface {
	InsertBulk(ctx context.Context, models []model.Seat) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Seat, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListWithAvailability(ctx context.Context, flightID string) ([]model.SeatAvailability, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Seat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Seat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListWithAvailability(ctx context.Context, flightID string) ([]model.SeatAvailability, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seat.ListWithAvailability")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availabilityQuery)

	seats := []model.SeatAvailability{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, availabilityQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return seats, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &seats, map[string]any{model.FieldFlightID: flightID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return seats, fmt.Errorf("failed to list seat availability: %w", err)
	}

	return seats, nil
}
