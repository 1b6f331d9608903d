package dto

import (
	"airline/internal/domains/seat/model"

	"github.com/google/uuid"
)

type CreateSeatsRequest struct {
	SeatNumbers []string `json:"seat_numbers" validate:"required,min=1,max=500,unique,dive,seatnumber"`
}

func (c *CreateSeatsRequest) ToModels(flightID string) []model.Seat {
	seats := make([]model.Seat, len(c.SeatNumbers))
	for i, number := range c.SeatNumbers {
		seats[i] = model.Seat{
			ID:         uuid.NewString(),
			FlightID:   flightID,
			SeatNumber: number,
		}
	}

	return seats
}

type SeatResponse struct {
	SeatID     string `json:"seat_id"`
	FlightID   string `json:"flight_id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

func (s *SeatResponse) FromModel(model model.Seat) {
	s.SeatID = model.ID
	s.FlightID = model.FlightID
	s.SeatNumber = model.SeatNumber
	s.IsBooked = model.IsBooked
}

func (s *SeatResponse) FromAvailability(model model.SeatAvailability) {
	s.SeatID = model.SeatID
	s.FlightID = model.FlightID
	s.SeatNumber = model.SeatNumber
	s.IsBooked = model.IsBooked
}

func FromAvailabilities(models []model.SeatAvailability) []SeatResponse {
	res := make([]SeatResponse, len(models))
	for i, mod := range models {
		res[i].FromAvailability(mod)
	}

	return res
}

func FromModels(models []model.Seat) []SeatResponse {
	res := make([]SeatResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
