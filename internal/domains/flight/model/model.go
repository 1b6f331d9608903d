package model

import (
	"airline/shared/model"
	"time"
)

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID                   = "id"
	FieldAircraftID           = "aircraft_id"
	FieldOriginAirportID      = "origin_airport_id"
	FieldDestinationAirportID = "destination_airport_id"
	FieldDepartureTime        = "departure_time"
	FieldArrivalTime          = "arrival_time"
)

// Flight is a scheduled trip. Departure precedes arrival and origin differs from destination;
// both are also enforced by CHECK constraints.
type Flight struct {
	ID                   string    `db:"id"`
	AircraftID           string    `db:"aircraft_id"`
	OriginAirportID      string    `db:"origin_airport_id"`
	DestinationAirportID string    `db:"destination_airport_id"`
	DepartureTime        time.Time `db:"departure_time"`
	ArrivalTime          time.Time `db:"arrival_time"`
	AircraftModel        *string   `column:"model" db:"aircraft_model"   table:"aircraft"`
	OriginCode           *string   `column:"code"  db:"origin_code"      table:"origin"`
	DestinationCode      *string   `column:"code"  db:"destination_code" table:"destination"`
	model.Metadata
}

func (Flight) GetJoinQuery() string {
	return "LEFT JOIN aircraft ON aircraft.id = flights.aircraft_id " +
		"LEFT JOIN airports origin ON origin.id = flights.origin_airport_id " +
		"LEFT JOIN airports destination ON destination.id = flights.destination_airport_id"
}
