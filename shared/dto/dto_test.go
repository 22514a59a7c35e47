package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"luna/shared/constant"
	"luna/shared/dto"
	"luna/shared/failure"
	"luna/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  constant.ActorSeeder,
		ModifiedBy: "ops",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.NotEqual(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, constant.ActorSeeder, metadata.CreatedBy)
	assert.Equal(t, "ops", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=ASC",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "lower case direction",
			query:    "sort_by=price_per_night&sort_dir=desc",
			expected: dto.QueryParams{SortBy: "price_per_night", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown direction is dropped",
			query:    "sort_by=name&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "name"},
		},
		{
			name:         "defaults when empty",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults when empty",
		},
		{
			name:         "malformed numbers fall back to defaults",
			query:        "page=abc&limit=-10",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "zero page falls back to default",
			query:        "page=0&limit=5",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: 5},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/properties?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Restrict(t *testing.T) {
	fields := []string{"created_at", "name"}

	tests := []struct {
		name        string
		params      dto.QueryParams
		wantErr     bool
		wantSortDir string
	}{
		{name: "no sort", params: dto.QueryParams{}, wantSortDir: ""},
		{name: "allowed field keeps direction", params: dto.QueryParams{SortBy: "name", SortDir: "ASC"}, wantSortDir: "ASC"},
		{name: "allowed field defaults direction", params: dto.QueryParams{SortBy: "created_at"}, wantSortDir: "DESC"},
		{name: "unknown field", params: dto.QueryParams{SortBy: "name; DROP TABLE properties"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Restrict(fields)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), constant.RequestParamSortBy)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSortDir, tt.params.SortDir)
		})
	}
}
