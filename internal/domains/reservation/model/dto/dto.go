package dto

import (
	"airline/internal/domains/reservation/model"
	"airline/shared"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FlightID string `json:"flight_id" validate:"required,uuid"`
	SeatID   string `json:"seat_id"   validate:"required,uuid"`
}

func (c *CreateReservationRequest) ToModel(userID string) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		UserID:      userID,
		FlightID:    c.FlightID,
		SeatID:      c.SeatID,
		BookingTime: timezone.Now(),
	}
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	FlightID    string  `json:"flight_id"`
	SeatID      string  `json:"seat_id"`
	SeatNumber  *string `json:"seat_number,omitempty"`
	BookingTime string  `json:"booking_time"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FlightID = model.FlightID
	r.SeatID = model.SeatID
	r.SeatNumber = model.SeatNumber
	r.BookingTime = timezone.Format(model.BookingTime, constant.DateFormat)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (g *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		g.Reservations[i].FromModel(mod)
	}
}

// ListReservationsFilter narrows the administrator listing. Empty fields are ignored.
type ListReservationsFilter struct {
	FlightID string
	UserID   string
}

func (l ListReservationsFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	filter := gDto.And()

	fields := [][2]string{{model.FieldFlightID, l.FlightID}, {model.FieldUserID, l.UserID}}

	for _, pair := range fields {
		field, value := pair[0], pair[1]
		if value == constant.Empty {
			continue
		}

		if _, err := uuid.Parse(value); err != nil {
			return filter, failure.BadRequestFromString(field + " must be a valid UUID") // nolint:wrapcheck
		}

		filter.Add(gDto.Filter{
			Field:    field,
			Value:    value,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter, nil
}
