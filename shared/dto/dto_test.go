package dto_test

import (
	"airline/shared/constant"
	"airline/shared/dto"
	"airline/shared/model"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "departure_time",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "departure_time", SortDir: "ASC"},
		},
		{
			name:           "defaults when nothing is provided",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults when disabled",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid and negative numbers fall back to defaults",
			queryParams:    map[string]string{"page": "invalid", "limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "unknown sort direction is ignored",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/flights")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	t.Run("allowed column keeps requested direction", func(t *testing.T) {
		q := dto.QueryParams{SortBy: "departure_time", SortDir: dto.SortDirDesc}
		q.RestrictSort("created_at", "departure_time", "arrival_time")

		assert.Equal(t, "departure_time", q.SortBy)
		assert.Equal(t, dto.SortDirDesc, q.SortDir)
	})

	t.Run("unknown column falls back to default", func(t *testing.T) {
		q := dto.QueryParams{SortBy: "1; DROP TABLE seats"}
		q.RestrictSort("created_at", "departure_time")

		assert.Equal(t, "created_at", q.SortBy)
		assert.Equal(t, dto.SortDirAsc, q.SortDir)
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "seats"},
			dto.Filter{Field: "flight_id", Value: "f-1", Operator: dto.FilterOperatorEq, Table: "seats"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(seats.id = :id AND seats.flight_id = :flight_id)", where)
	assert.Equal(t, map[string]any{"id": "s-1", "flight_id": "f-1"}, args)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "greater or equal with custom arg name",
			filter: dto.Filter{ArgName: "departure_from", Field: "departure_time", Value: "2025-01-01", Operator: dto.FilterOperatorGreaterEq},
			where:  "departure_time >= :departure_from",
			args:   map[string]any{"departure_from": "2025-01-01"},
		},
		{
			name:   "in over a slice",
			filter: dto.Filter{Field: "seat_number", Value: []string{"1A", "1B"}, Operator: dto.FilterOperatorIn},
			where:  "seat_number IN (:seat_number_0, :seat_number_1) ",
			args:   map[string]any{"seat_number_0": "1A", "seat_number_1": "1B"},
		},
		{
			name:   "unknown operator yields nothing",
			filter: dto.Filter{Field: "id", Operator: "between"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
