package repository_test

import (
	"airline/infras/otel/mocks"
	"airline/infras/postgres"
	"airline/internal/domains/reservation/model"
	"airline/internal/domains/reservation/repository"
	seatRepository "airline/internal/domains/seat/repository"
	gDto "airline/shared/dto"
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	liveDSNEnv    = "AIRLINE_TEST_POSTGRES_DSN"
	upsertAirport = "INSERT INTO airports (code, name, city) VALUES ($1, $1, 'Test') " +
		"ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name RETURNING id"
)

// liveDB connects to a disposable database and applies the migrations. The test is skipped
// unless AIRLINE_TEST_POSTGRES_DSN is set.
func liveDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(liveDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", liveDSNEnv)
	}

	mig, err := migrate.New("file://../../../../migrations/postgres", dsn)
	require.NoError(t, err)

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	_, _ = mig.Close()

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

type liveFixture struct {
	flightID string
	seatID   string
	userIDs  []string
}

func seedFlight(t *testing.T, db *sqlx.DB, users int) liveFixture {
	t.Helper()

	ctx := context.Background()
	suffix := uuid.NewString()[:6]
	fixture := liveFixture{flightID: uuid.NewString(), seatID: uuid.NewString()}

	var originID, destinationID, aircraftID string

	require.NoError(t, db.QueryRowxContext(ctx, upsertAirport, "TSA").Scan(&originID))
	require.NoError(t, db.QueryRowxContext(ctx, upsertAirport, "TSB").Scan(&destinationID))
	require.NoError(t, db.QueryRowxContext(ctx,
		"INSERT INTO aircraft (model, registration, capacity) VALUES ('Test', $1, 10) RETURNING id", "T-"+suffix).Scan(&aircraftID))

	departure := time.Now().Add(24 * time.Hour)

	_, err := db.ExecContext(ctx,
		"INSERT INTO flights (id, aircraft_id, origin_airport_id, destination_airport_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4, $5, $6)",
		fixture.flightID, aircraftID, originID, destinationID, departure, departure.Add(2*time.Hour))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO seats (id, flight_id, seat_number) VALUES ($1, $2, '1A')", fixture.seatID, fixture.flightID)
	require.NoError(t, err)

	for i := range users {
		userID := uuid.NewString()

		_, err = db.ExecContext(ctx, "INSERT INTO users (id, email, password) VALUES ($1, $2, 'x')", userID, userID+"@test.local")
		require.NoError(t, err, "user %d", i)

		fixture.userIDs = append(fixture.userIDs, userID)
	}

	return fixture
}

func TestLive_ConcurrentBookingHasOneWinner(t *testing.T) {
	db := liveDB(t)
	fixture := seedFlight(t, db, 16)
	repo := repository.New(postgres.NewFromDB(db), mocks.NewOtel())

	var wins, conflicts atomic.Int32

	group, ctx := errgroup.WithContext(context.Background())

	for _, userID := range fixture.userIDs {
		group.Go(func() error {
			_, err := repo.Book(ctx, model.Reservation{
				ID:          uuid.NewString(),
				UserID:      userID,
				FlightID:    fixture.flightID,
				SeatID:      fixture.seatID,
				BookingTime: time.Now(),
			})

			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, repository.ErrSeatTaken):
				conflicts.Add(1)
			default:
				return err
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(15), conflicts.Load())

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM reservations WHERE seat_id = $1", fixture.seatID))
	assert.Equal(t, 1, count)

	var booked bool
	require.NoError(t, db.Get(&booked, "SELECT is_booked FROM seats WHERE id = $1", fixture.seatID))
	assert.True(t, booked)
}

func TestLive_SeatFromAnotherFlightIsRejected(t *testing.T) {
	db := liveDB(t)
	fixture := seedFlight(t, db, 1)
	repo := repository.New(postgres.NewFromDB(db), mocks.NewOtel())

	_, err := repo.Book(context.Background(), model.Reservation{
		ID:          uuid.NewString(),
		UserID:      fixture.userIDs[0],
		FlightID:    uuid.NewString(),
		SeatID:      fixture.seatID,
		BookingTime: time.Now(),
	})

	assert.ErrorIs(t, err, repository.ErrSeatNotFound)
}

func ownedBy(reservationID, userID string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

func seatBooked(t *testing.T, seats seatRepository.Seat, flightID, seatID string) bool {
	t.Helper()

	listed, err := seats.ListWithAvailability(context.Background(), flightID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, seatID, listed[0].SeatID)

	return listed[0].IsBooked
}

func TestLive_CancelReleasesSeatForNextUser(t *testing.T) {
	db := liveDB(t)
	fixture := seedFlight(t, db, 2)
	conn := postgres.NewFromDB(db)
	repo := repository.New(conn, mocks.NewOtel())
	seats := seatRepository.New(conn, mocks.NewOtel())
	ctx := context.Background()

	first, second := fixture.userIDs[0], fixture.userIDs[1]

	booked, err := repo.Book(ctx, model.Reservation{
		ID:          uuid.NewString(),
		UserID:      first,
		FlightID:    fixture.flightID,
		SeatID:      fixture.seatID,
		BookingTime: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, seatBooked(t, seats, fixture.flightID, fixture.seatID))

	_, err = repo.Book(ctx, model.Reservation{
		ID:          uuid.NewString(),
		UserID:      second,
		FlightID:    fixture.flightID,
		SeatID:      fixture.seatID,
		BookingTime: time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrSeatTaken)

	_, err = repo.Release(ctx, ownedBy(booked.ID, second))
	require.ErrorIs(t, err, repository.ErrReservationNotFound)
	assert.True(t, seatBooked(t, seats, fixture.flightID, fixture.seatID))

	released, err := repo.Release(ctx, ownedBy(booked.ID, first))
	require.NoError(t, err)
	assert.Equal(t, booked.ID, released.ID)

	assert.False(t, seatBooked(t, seats, fixture.flightID, fixture.seatID))

	var flag bool
	require.NoError(t, db.Get(&flag, "SELECT is_booked FROM seats WHERE id = $1", fixture.seatID))
	assert.False(t, flag)

	rebooked, err := repo.Book(ctx, model.Reservation{
		ID:          uuid.NewString(),
		UserID:      second,
		FlightID:    fixture.flightID,
		SeatID:      fixture.seatID,
		BookingTime: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, second, rebooked.UserID)
	assert.True(t, seatBooked(t, seats, fixture.flightID, fixture.seatID))
}
