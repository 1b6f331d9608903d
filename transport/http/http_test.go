package http_test

import (
	"airline/config"
	"airline/infras/jwt"
	jwtMocks "airline/infras/jwt/mocks"
	otelMocks "airline/infras/otel/mocks"
	authMocks "airline/internal/domains/auth/mocks"
	flightMocks "airline/internal/domains/flight/mocks"
	flightDto "airline/internal/domains/flight/model/dto"
	reservationMocks "airline/internal/domains/reservation/mocks"
	reservationDto "airline/internal/domains/reservation/model/dto"
	"airline/internal/domains/reservation/service"
	seatMocks "airline/internal/domains/seat/mocks"
	seatDto "airline/internal/domains/seat/model/dto"
	authHandler "airline/internal/handlers/auth"
	flightHandler "airline/internal/handlers/flight"
	healthHandler "airline/internal/handlers/health"
	reservationHandler "airline/internal/handlers/reservation"
	seatHandler "airline/internal/handlers/seat"
	"airline/internal/policy"
	"airline/permissions"
	cacheMocks "airline/shared/cache/mocks"
	transport "airline/transport/http"
	"airline/transport/http/middleware"
	"airline/transport/http/router"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	flightID = "3f9a1c52-8d7e-4b61-9e0f-2a4c6b8d0e13"
	seatID   = "5d1f0b9e-3a2c-4e7f-8b6d-9c0a1e2f3b4c"
)

type app struct {
	handler     http.Handler
	jwt         *jwtMocks.MockJWT
	flight      *flightMocks.MockFlightService
	seat        *seatMocks.MockSeatService
	reservation *reservationMocks.MockReservationService
}

func newApp(t *testing.T) app {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.JWT.CookieName = "access_token"

	a := app{
		jwt:         jwtMocks.NewMockJWT(ctrl),
		flight:      flightMocks.NewMockFlightService(ctrl),
		seat:        seatMocks.NewMockSeatService(ctrl),
		reservation: reservationMocks.NewMockReservationService(ctrl),
	}

	handlers := router.DomainHandlers{
		Auth:        authHandler.New(authMocks.NewMockAuth(ctrl), cfg, ot),
		Flight:      flightHandler.New(a.flight, ot),
		Seat:        seatHandler.New(a.seat, ot),
		Reservation: reservationHandler.New(a.reservation, ot),
		Health:      healthHandler.NewWithChecks(map[string]healthHandler.Check{}, ot),
	}

	r := router.New(handlers,
		middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl)),
		middleware.NewAuthRoleMiddleware(a.jwt, ot, permissions.Get(), cfg))

	a.handler = transport.New(cfg, r).Adaptor()

	return a
}

func (a app) as(role string) {
	a.jwt.EXPECT().
		ValidateToken(gomock.Any(), role, jwt.AccessToken).
		Return(&jwt.Claims{UserID: role + "-id", Email: role + "@airline.local", Role: role}, nil).
		AnyTimes()
}

func (a app) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_Public(t *testing.T) {
	a := newApp(t)

	a.flight.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(flightDto.GetFlightsResponse{}, nil).Times(2)
	a.flight.EXPECT().Get(gomock.Any(), flightID).Return(flightDto.FlightResponse{ID: flightID}, nil)
	a.seat.EXPECT().ListWithAvailability(gomock.Any(), flightID).Return([]seatDto.SeatResponse{}, nil)

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/flights", "", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/flights/", "", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/flights/"+flightID, "", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/flights/"+flightID+"/seats", "", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/swagger/index.html", "", "").Code)
}

func TestRoutes_UnknownPathIsNotFound(t *testing.T) {
	a := newApp(t)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/nowhere", "", "").Code)
}

func TestRoutes_BookingRequiresAuthentication(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodPost, "/v1/reservations", "", `{"flight_id":"`+flightID+`","seat_id":"`+seatID+`"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_UserBooksAndCancels(t *testing.T) {
	a := newApp(t)
	a.as("user")

	a.reservation.EXPECT().
		Create(gomock.Any(), reservationDto.CreateReservationRequest{FlightID: flightID, SeatID: seatID}).
		DoAndReturn(func(ctx context.Context, _ reservationDto.CreateReservationRequest) (reservationDto.ReservationResponse, error) {
			principal, ok := policy.FromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "user-id", principal.UserID)

			return reservationDto.ReservationResponse{ID: "r-1"}, nil
		})
	a.reservation.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)

	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/v1/reservations", "user", `{"flight_id":"`+flightID+`","seat_id":"`+seatID+`"}`).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/v1/reservations/r-1", "user", "").Code)
}

func TestRoutes_AdminBookingIsForbidden(t *testing.T) {
	a := newApp(t)
	a.as("admin")

	for _, body := range []string{
		`{"flight_id":"` + flightID + `","seat_id":"` + seatID + `"}`,
		`{not json`,
		`{"flight_id":"x","seat_id":"y","extra":1}`,
	} {
		rec := a.do(http.MethodPost, "/v1/reservations", "admin", body)

		assert.Equal(t, http.StatusForbidden, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "admins cannot book", body)
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	a := newApp(t)
	a.as("user")
	a.as("admin")

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/v1/admin/reservations", "user", "").Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodDelete, "/v1/admin/reservations/r-1", "user", "").Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPost, "/v1/flights/"+flightID+"/seats", "user", `{"seat_numbers":["1A"]}`).Code)

	a.reservation.EXPECT().AdminDelete(gomock.Any(), "r-1").Return(service.ErrReservationNotFound)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/v1/admin/reservations/r-1", "admin", "").Code)
}
