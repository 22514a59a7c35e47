package dto_test

import (
	"testing"

	"luna/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "type", Value: "Villa", Operator: dto.FilterOperatorEq, Table: "properties"},
			wantWhere: "properties.type = :type",
			wantArgs:  map[string]any{"type": "Villa"},
		},
		{
			name:      "like wraps the value",
			filter:    dto.Filter{Field: "location", Value: "Lagos", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(location) LIKE LOWER(:location)",
			wantArgs:  map[string]any{"location": "%Lagos%"},
		},
		{
			name:      "greater or equal with arg name",
			filter:    dto.Filter{ArgName: "min_price", Field: "price_per_night", Value: 50000.0, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "price_per_night >= :min_price",
			wantArgs:  map[string]any{"min_price": 50000.0},
		},
		{
			name:      "in expands slices",
			filter:    dto.Filter{Field: "status", Value: []string{"Pending", "Confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "Pending", "status_1": "Confirmed"},
		},
		{
			name:      "array contains ignoring case",
			filter:    dto.Filter{ArgName: "amenity_0", Field: "amenities", Value: "wifi", Operator: dto.FilterArrayContainsFold, Table: "properties"},
			wantWhere: "EXISTS (SELECT 1 FROM unnest(properties.amenities) AS elem WHERE LOWER(elem) = LOWER(:amenity_0))",
			wantArgs:  map[string]any{"amenity_0": "wifi"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "location", Value: "50%_off", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(location) LIKE LOWER(:location)",
			wantArgs:  map[string]any{"location": `%50\%\_off%`},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Value: "Cancelled", Operator: dto.FilterOperatorNotEq},
			wantWhere: "status <> :status",
			wantArgs:  map[string]any{"status": "Cancelled"},
		},
		{
			name:      "in with nothing to match",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "1", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "type", Value: "Apartment", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "a", Field: "bedrooms", Value: 2, Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{ArgName: "b", Field: "bathrooms", Value: 2, Operator: dto.FilterOperatorGreaterEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(type = :type AND (bedrooms >= :a OR bathrooms >= :b))", where)
	assert.Equal(t, map[string]any{"type": "Apartment", "a": 2, "b": 2}, args)

	skipped := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "1", Operator: "between"},
			dto.Filter{Field: "name", Value: "Loft", Operator: dto.FilterOperatorEq},
		},
	}
	where, args = skipped.GetWhereClause()

	assert.Equal(t, "(name = :name)", where)
	assert.Equal(t, map[string]any{"name": "Loft"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
