package model

import "time"

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldFlightID    = "flight_id"
	FieldSeatID      = "seat_id"
	FieldBookingTime = "booking_time"
)

// Reservation links one user to one seat of one flight. seat_id is unique across all reservations
// and (seat_id, flight_id) references the seat, so the seat always belongs to the flight.
type Reservation struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	FlightID    string    `db:"flight_id"`
	SeatID      string    `db:"seat_id"`
	BookingTime time.Time `db:"booking_time"`
	SeatNumber  *string   `column:"seat_number" db:"seat_number" table:"seats"`
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN seats ON seats.id = reservations.seat_id"
}
