package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/reservation/model"
	seatModel "airline/internal/domains/seat/model"
	"airline/shared"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	gRepo "airline/shared/repository"
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSeatNotFound        = errors.New("seat not found on flight")
	ErrSeatTaken           = errors.New("seat already booked")
	ErrReservationNotFound = errors.New("reservation not found")
)

type Reservation interface {
	Book(ctx context.Context, reservation model.Reservation) (model.Reservation, error)
	Release(ctx context.Context, filter gDto.FilterGroup) (model.Reservation, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	seats gRepo.Repository[seatModel.Seat]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		seats:      gRepo.NewRepository[seatModel.Seat](seatModel.EntityName, seatModel.TableName, seatModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func seatOnFlight(seatID, flightID string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: seatModel.FieldID, Value: seatID, Operator: gDto.FilterOperatorEq, Table: seatModel.TableName},
		gDto.Filter{Field: seatModel.FieldFlightID, Value: flightID, Operator: gDto.FilterOperatorEq, Table: seatModel.TableName},
	)
}

// Book inserts the reservation and flags its seat in one transaction.
// The unique index on reservations.seat_id decides races the existence check cannot see;
// the losing insert surfaces as ErrSeatTaken like any other taken seat.
func (r *repositoryImpl) Book(ctx context.Context, reservation model.Reservation) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seatFilter := seatOnFlight(reservation.SeatID, reservation.FlightID)

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		seat, err := r.seats.GetTx(ctx, tx, seatFilter)
		if err != nil {
			return err
		}

		if seat.ID == constant.Empty {
			return ErrSeatNotFound
		}

		taken, err := r.ExistTx(ctx, tx, shared.FilterByID(seat.ID, model.FieldSeatID, model.TableName))
		if err != nil {
			return err
		}

		if taken {
			return ErrSeatTaken
		}

		if err = r.InsertTx(ctx, tx, reservation); err != nil {
			switch shared.PqErrorCode(err) {
			case constant.PqErrorCodeUniqueViolation:
				return ErrSeatTaken
			case constant.PqErrorCodeFkViolation:
				return ErrSeatNotFound
			}

			return err
		}

		if _, err = r.seats.UpdateTx(ctx, tx, map[string]any{seatModel.FieldIsBooked: true}, seatFilter); err != nil {
			return err
		}

		reservation.SeatNumber = &seat.SeatNumber

		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to book seat: %w", err)
	}

	return reservation, nil
}

// Release deletes the reservation matching filter and clears its seat flag in one transaction.
func (r *repositoryImpl) Release(ctx context.Context, filter gDto.FilterGroup) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		reservation, err := r.GetTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if reservation.ID == constant.Empty {
			return ErrReservationNotFound
		}

		affected, err := r.DeleteTx(ctx, tx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		// a concurrent release got there first
		if affected == 0 {
			return ErrReservationNotFound
		}

		if _, err = r.seats.UpdateTx(ctx, tx, map[string]any{seatModel.FieldIsBooked: false}, seatOnFlight(reservation.SeatID, reservation.FlightID)); err != nil {
			return err
		}

		res = reservation

		return nil
	})
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to release reservation: %w", err)
	}

	return res, nil
}
