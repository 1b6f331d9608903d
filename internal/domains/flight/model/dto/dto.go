package dto

import (
	"airline/internal/domains/flight/model"
	"airline/shared"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	gModel "airline/shared/model"
	"airline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateFlightRequest struct {
	AircraftID           string    `json:"aircraft_id"            validate:"required,uuid"`
	OriginAirportID      string    `json:"origin_airport_id"      validate:"required,uuid"`
	DestinationAirportID string    `json:"destination_airport_id" validate:"required,uuid,nefield=OriginAirportID"`
	DepartureTime        time.Time `json:"departure_time"         validate:"required"`
	ArrivalTime          time.Time `json:"arrival_time"           validate:"required,gtfield=DepartureTime"`
}

func (c *CreateFlightRequest) ToModel(actor string) model.Flight {
	return model.Flight{
		ID:                   uuid.NewString(),
		AircraftID:           c.AircraftID,
		OriginAirportID:      c.OriginAirportID,
		DestinationAirportID: c.DestinationAirportID,
		DepartureTime:        c.DepartureTime,
		ArrivalTime:          c.ArrivalTime,
		Metadata:             gModel.NewMetadata(actor, timezone.Now()),
	}
}

// ListFlightsFilter narrows the flight list to a departure date range, both ends inclusive.
type ListFlightsFilter struct {
	DepartureFrom string
	DepartureTo   string
}

func (l ListFlightsFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	filter := gDto.And()

	var from, to time.Time

	if l.DepartureFrom != constant.Empty {
		date, err := timezone.ParseDate(l.DepartureFrom)
		if err != nil {
			return filter, failure.BadRequestFromString("departure_from must be a YYYY-MM-DD date") // nolint:wrapcheck
		}

		from = date

		filter.Add(gDto.Filter{
			ArgName:  constant.RequestParamDepartureFrom,
			Field:    model.FieldDepartureTime,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if l.DepartureTo != constant.Empty {
		date, err := timezone.ParseDate(l.DepartureTo)
		if err != nil {
			return filter, failure.BadRequestFromString("departure_to must be a YYYY-MM-DD date") // nolint:wrapcheck
		}

		to = date

		filter.Add(gDto.Filter{
			ArgName:  constant.RequestParamDepartureTo,
			Field:    model.FieldDepartureTime,
			Value:    to.AddDate(0, 0, 1),
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		})
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return filter, failure.BadRequestFromString("departure_to must not be before departure_from") // nolint:wrapcheck
	}

	return filter, nil
}

type FlightResponse struct {
	ID                   string  `json:"id"`
	AircraftID           string  `json:"aircraft_id"`
	AircraftModel        *string `json:"aircraft_model,omitempty"`
	OriginAirportID      string  `json:"origin_airport_id"`
	OriginCode           *string `json:"origin_code,omitempty"`
	DestinationAirportID string  `json:"destination_airport_id"`
	DestinationCode      *string `json:"destination_code,omitempty"`
	DepartureTime        string  `json:"departure_time"`
	ArrivalTime          string  `json:"arrival_time"`
	gDto.Metadata
}

func (f *FlightResponse) FromModel(model model.Flight) {
	f.ID = model.ID
	f.AircraftID = model.AircraftID
	f.AircraftModel = model.AircraftModel
	f.OriginAirportID = model.OriginAirportID
	f.OriginCode = model.OriginCode
	f.DestinationAirportID = model.DestinationAirportID
	f.DestinationCode = model.DestinationCode
	f.DepartureTime = timezone.Format(model.DepartureTime, constant.DateFormat)
	f.ArrivalTime = timezone.Format(model.ArrivalTime, constant.DateFormat)
	f.Metadata.FromModel(model.Metadata)
}

type GetFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (g *GetFlightsResponse) FromModels(models []model.Flight, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Flights = make([]FlightResponse, len(models))
	for i, mod := range models {
		g.Flights[i].FromModel(mod)
	}
}
