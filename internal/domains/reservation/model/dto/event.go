package dto

import (
	"airline/internal/domains/reservation/model"
	"airline/shared/constant"
	"airline/shared/timezone"
	"time"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published after a reservation transaction commits.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	FlightID      string `json:"flight_id"`
	SeatID        string `json:"seat_id"`
	Actor         string `json:"actor"`
	OccurredAt    string `json:"occurred_at"`
}

func NewReservationEvent(eventType, actor string, reservation model.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		FlightID:      reservation.FlightID,
		SeatID:        reservation.SeatID,
		Actor:         actor,
		OccurredAt:    timezone.Format(at, constant.DateFormat),
	}
}
