package flight

import (
	"airline/infras/otel"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/validator"
	"airline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flight routes on a router already mounted at /flights.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetFlights)
	router.Post("/", handler.CreateFlight)
	router.Get("/{id}", handler.GetFlightByID)
	router.Delete("/{id}", handler.DeleteFlight)
}

// CreateFlight schedules a new flight.
// @Summary Create a flight
// @Description Schedule a flight between two airports. Departure must precede arrival.
// @Tags Flight
// @Accept json
// @Produce json
// @Param request body dto.CreateFlightRequest true "Flight"
// @Success 201 {object} response.Data[dto.FlightResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [post]
// @Security BearerAuth
func (handler *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlight")
	defer scope.End()

	req := dto.CreateFlightRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFlights lists flights.
// @Summary List flights
// @Description List flights, optionally within a departure date range.
// @Tags Flight
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param departure_from query string false "Earliest departure date (YYYY-MM-DD)"
// @Param departure_to query string false "Latest departure date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [get]
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := dto.ListFlightsFilter{
		DepartureFrom: r.URL.Query().Get(constant.RequestParamDepartureFrom),
		DepartureTo:   r.URL.Query().Get(constant.RequestParamDepartureTo),
	}.ToFilterGroup()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	flights, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flights")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID returns one flight.
// @Summary Get a flight
// @Tags Flight
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [get]
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	flight, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flight)
}

// DeleteFlight removes a flight that has no seats or reservations.
// @Summary Delete a flight
// @Tags Flight
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlight")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight deleted successfully")

	response.WithMessage(w, http.StatusOK, "Flight deleted successfully")
}
