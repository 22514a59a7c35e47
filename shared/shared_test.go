package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"luna/shared"
	"luna/shared/cache/mocks"
	"luna/shared/constant"
	"luna/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no data", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 12, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type listingUpdate struct {
		Name      *string  `db:"name"`
		MaxGuests *int     `db:"max_guests"`
		Price     *float64 `db:"price_per_night"`
		Untagged  *string
	}

	name := "Ocean View Loft"
	guests := 0

	result := shared.TransformFields(listingUpdate{Name: &name, MaxGuests: &guests, Untagged: &name}, "ops")

	assert.Equal(t, &name, result["name"])
	assert.Equal(t, &guests, result["max_guests"])
	assert.NotContains(t, result, "price_per_night")
	assert.Len(t, result, 4)
	assert.Equal(t, "ops", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("prop-1", "id", "properties")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "prop-1", Operator: dto.FilterOperatorEq, Table: "properties"},
		},
	}, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "property:get:abc", shared.BuildCacheKey("property:get", "abc"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}
	lagos := dto.FilterGroup{Filters: []any{dto.Filter{Field: "location", Value: "Lagos", Operator: dto.FilterOperatorLike}}}
	abuja := dto.FilterGroup{Filters: []any{dto.Filter{Field: "location", Value: "Abuja", Operator: dto.FilterOperatorLike}}}

	first := shared.BuildCacheKeyWithQuery("property:gets", params, lagos)
	second := shared.BuildCacheKeyWithQuery("property:gets", params, lagos)
	other := shared.BuildCacheKeyWithQuery("property:gets", params, abuja)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "property:gets:2:10:"))
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ContextGuest, shared.Actor(context.Background()))
	assert.Equal(t, constant.ContextGuest, shared.Actor(context.WithValue(context.Background(), constant.ContextKeyActor, "")))
	assert.Equal(t, "ops", shared.Actor(context.WithValue(context.Background(), constant.ContextKeyActor, "ops")))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "property:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "property:gets")

	redisCache.EXPECT().Clear(gomock.Any(), "property:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "property:count")
}
