package service_test

import (
	"airline/config"
	"airline/infras/otel/mocks"
	flightMocks "airline/internal/domains/flight/mocks"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
	"airline/internal/policy"
	cacheMocks "airline/shared/cache/mocks"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const flightID = "3f9a1c52-8d7e-4b61-9e0f-2a4c6b8d0e13"

var errCacheMiss = errors.New("redis: nil")

func expectListsInvalidated(cache *cacheMocks.MockRedisCache) {
	cache.EXPECT().Clear(gomock.Any(), "flight:list*").Return(nil)
	cache.EXPECT().Clear(gomock.Any(), "flight:count*").Return(nil)
}

func newService(t *testing.T) (service.Flight, *flightMocks.MockFlight, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := flightMocks.NewMockFlight(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func TestFlightService_Create(t *testing.T) {
	departure := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	req := dto.CreateFlightRequest{
		AircraftID:           "9a0e1c4b-52f1-4d8e-8c3b-7f6a5e4d3c2b",
		OriginAirportID:      "1b2c3d4e-5f60-4718-8a9b-0c1d2e3f4a5b",
		DestinationAirportID: "6c7d8e9f-0a1b-4c2d-8e3f-4a5b6c7d8e9f",
		DepartureTime:        departure,
		ArrivalTime:          departure.Add(2 * time.Hour),
	}

	admin := policy.WithPrincipal(context.Background(), policy.Principal{UserID: "admin-1", Role: constant.RoleAdmin})

	t.Run("created", func(t *testing.T) {
		svc, repo, cache := newService(t)

		expectListsInvalidated(cache)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, flight model.Flight) error {
				assert.NotEmpty(t, flight.ID)
				assert.Equal(t, "admin-1", flight.CreatedBy)
				assert.Equal(t, req.OriginAirportID, flight.OriginAirportID)

				return nil
			})

		res, err := svc.Create(admin, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, req.DestinationAirportID, res.DestinationAirportID)
		assert.NotEmpty(t, res.ArrivalTime)
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown airport", err: &pq.Error{Code: constant.PqErrorCodeFkViolation}, wantCode: http.StatusBadRequest},
		{name: "check violation", err: &pq.Error{Code: constant.PqErrorCodeCheckViolation}, wantCode: http.StatusBadRequest},
		{name: "store error", err: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.err)

			_, err := svc.Create(admin, req)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFlightService_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Get(context.Background(), "42")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, _, cache := newService(t)

		cache.EXPECT().
			Get(gomock.Any(), "flight:get:"+flightID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.FlightResponse).ID = flightID

				return nil
			})

		res, err := svc.Get(context.Background(), flightID)

		assert.NoError(t, err)
		assert.Equal(t, flightID, res.ID)
	})

	t.Run("cache miss loads from store", func(t *testing.T) {
		svc, repo, cache := newService(t)

		code := "CGK"

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{ID: flightID, OriginCode: &code}, nil)
		cache.EXPECT().Save(gomock.Any(), "flight:get:"+flightID, gomock.Any(), 60).Return(nil)

		res, err := svc.Get(context.Background(), flightID)

		assert.NoError(t, err)
		assert.Equal(t, flightID, res.ID)
		assert.Equal(t, &code, res.OriginCode)
	})

	t.Run("cached entry is written before a following delete evicts it", func(t *testing.T) {
		svc, repo, cache := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{ID: flightID}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), "flight:get:"+flightID, gomock.Any()).Return(errCacheMiss),
			cache.EXPECT().Save(gomock.Any(), "flight:get:"+flightID, gomock.Any(), 60).Return(nil),
			cache.EXPECT().Delete(gomock.Any(), "flight:get:"+flightID).Return(nil),
		)
		expectListsInvalidated(cache)

		_, err := svc.Get(context.Background(), flightID)
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(context.Background(), flightID))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{}, nil)

		_, err := svc.Get(context.Background(), flightID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFlightService_GetAll(t *testing.T) {
	t.Run("sort column is restricted", func(t *testing.T) {
		svc, repo, cache := newService(t)

		params := gDto.QueryParams{Page: 2, Limit: 5, SortBy: "password;--"}

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Flight, error) {
				assert.Equal(t, model.FieldDepartureTime, p.SortBy)
				assert.Equal(t, gDto.SortDirAsc, p.SortDir)

				return []model.Flight{{ID: flightID}}, nil
			})

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 11, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
		assert.Len(t, res.Flights, 1)
	})

	t.Run("page served from cache", func(t *testing.T) {
		svc, _, cache := newService(t)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, value any) error {
				assert.True(t, strings.HasPrefix(key, "flight:list:"), key)

				*value.(*dto.GetFlightsResponse) = dto.GetFlightsResponse{TotalData: 1, TotalPage: 1, Flights: []dto.FlightResponse{{ID: flightID}}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, flightID, res.Flights[0].ID)
	})

	t.Run("count served from cache", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, value any) error {
				if strings.HasPrefix(key, "flight:count:") {
					*value.(*int) = 7

					return nil
				}

				return errCacheMiss
			}).
			Times(2)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Flight{{ID: flightID}}, nil)
		cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
			DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
				assert.True(t, strings.HasPrefix(key, "flight:list:"), key)

				return nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 5}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 7, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("count error", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestFlightService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *flightMocks.MockFlight, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name:     "invalid id",
			id:       "abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   flightID,
			setupMock: func(repo *flightMocks.MockFlight, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "blocked by seats",
			id:   flightID,
			setupMock: func(repo *flightMocks.MockFlight, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "deleted and evicted",
			id:   flightID,
			setupMock: func(repo *flightMocks.MockFlight, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				cache.EXPECT().Delete(gomock.Any(), "flight:get:"+flightID).Return(nil)
				expectListsInvalidated(cache)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)

			if tt.setupMock != nil {
				tt.setupMock(repo, cache)
			}

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}
