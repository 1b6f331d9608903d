package model

const (
	TableName  = "seats"
	EntityName = "seat"

	FieldID         = "id"
	FieldFlightID   = "flight_id"
	FieldSeatNumber = "seat_number"
	FieldIsBooked   = "is_booked"
)

// Seat belongs to exactly one flight. IsBooked mirrors whether a reservation references the seat
// and is only written inside the reservation transactions.
type Seat struct {
	ID         string `db:"id"`
	FlightID   string `db:"flight_id"`
	SeatNumber string `db:"seat_number"`
	IsBooked   bool   `db:"is_booked"`
}

// SeatAvailability is a read projection: a seat is booked iff a reservation row references it.
type SeatAvailability struct {
	SeatID     string `db:"seat_id"`
	FlightID   string `db:"flight_id"`
	SeatNumber string `db:"seat_number"`
	IsBooked   bool   `db:"is_booked"`
}
