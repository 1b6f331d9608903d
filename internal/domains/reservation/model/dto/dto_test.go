package dto_test

import (
	"airline/internal/domains/reservation/model"
	"airline/internal/domains/reservation/model/dto"
	"airline/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{FlightID: "f-1", SeatID: "s-1"}

	reservation := req.ToModel("u-1")

	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "u-1", reservation.UserID)
	assert.Equal(t, "f-1", reservation.FlightID)
	assert.Equal(t, "s-1", reservation.SeatID)
	assert.False(t, reservation.BookingTime.IsZero())
}

func TestReservationResponse_FromModel(t *testing.T) {
	seatNumber := "12C"
	res := dto.ReservationResponse{}

	res.FromModel(model.Reservation{
		ID:          "r-1",
		UserID:      "u-1",
		FlightID:    "f-1",
		SeatID:      "s-1",
		SeatNumber:  &seatNumber,
		BookingTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "r-1", res.ID)
	assert.Equal(t, "12C", *res.SeatNumber)
	assert.NotEmpty(t, res.BookingTime)
}

func TestListReservationsFilter_ToFilterGroup(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		group, err := dto.ListReservationsFilter{}.ToFilterGroup()

		require.NoError(t, err)
		assert.Empty(t, group.Filters)
	})

	t.Run("flight and user narrow the listing", func(t *testing.T) {
		group, err := dto.ListReservationsFilter{
			FlightID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			UserID:   "9b2d5c1e-2f4a-4b7e-8c3d-1a2b3c4d5e6f",
		}.ToFilterGroup()

		require.NoError(t, err)

		where, args := group.GetWhereClause()
		assert.Equal(t, "(reservations.flight_id = :flight_id AND reservations.user_id = :user_id)", where)
		assert.Len(t, args, 2)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		_, err := dto.ListReservationsFilter{UserID: "nope"}.ToFilterGroup()

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
