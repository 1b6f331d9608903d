package seat

import (
	"airline/infras/otel"
	"airline/internal/domains/seat/model/dto"
	"airline/internal/domains/seat/service"
	"airline/shared/constant"
	"airline/shared/validator"
	"airline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seat
	otel    otel.Otel
}

func New(service service.Seat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers seat routes on a router already mounted at /flights.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}/seats", handler.GetSeats)
	router.Post("/{id}/seats", handler.CreateSeats)
}

// GetSeats lists the seats of a flight with their availability.
// @Summary List seats of a flight
// @Description Every seat of the flight, ordered by row, with is_booked derived from reservations. An unknown flight lists nothing.
// @Tags Seat
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[[]dto.SeatResponse]
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id}/seats [get]
func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	seats, err := handler.service.ListWithAvailability(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

// CreateSeats adds seats to a flight.
// @Summary Create seats
// @Tags Seat
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param request body dto.CreateSeatsRequest true "Seat numbers"
// @Success 201 {object} response.Data[[]dto.SeatResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id}/seats [post]
// @Security BearerAuth
func (handler *Handler) CreateSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeats")
	defer scope.End()

	req := dto.CreateSeatsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	seats, err := handler.service.CreateSeats(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create seats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Seats created successfully")

	response.WithJSON(w, http.StatusCreated, seats)
}
