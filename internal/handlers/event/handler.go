// Package event consumes reservation lifecycle events published after each commit.
package event

import (
	"airline/infras/kafka"
	"airline/infras/otel"
	"airline/internal/domains/reservation/model/dto"
	"airline/shared/constant"
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{otel: otel}
}

// HandleReservation records one reservation event in the audit log. Malformed messages and
// unknown event types are skipped and their offsets committed.
func (h Handler) HandleReservation(ctx context.Context, message kafkaGo.Message) error {
	_, scope := h.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleReservation")
	defer scope.End()

	event, err := kafka.Decode[dto.ReservationEvent](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("offset", message.Offset).Msg("skipping malformed reservation event")

		return nil
	}

	switch event.Type {
	case dto.EventReservationCreated, dto.EventReservationCancelled:
		log.Info().
			Str("event", event.Type).
			Str("reservation_id", event.ReservationID).
			Str("flight_id", event.FlightID).
			Str("seat_id", event.SeatID).
			Str("user_id", event.UserID).
			Str("actor", event.Actor).
			Str("occurred_at", event.OccurredAt).
			Msg("reservation event")
	default:
		log.Warn().Str("event", event.Type).Msg("skipping unknown reservation event")
	}

	return nil
}
