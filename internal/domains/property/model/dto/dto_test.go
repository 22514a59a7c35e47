package dto_test

import (
	"net/http/httptest"
	"testing"

	"luna/internal/domains/property/model"
	"luna/internal/domains/property/model/dto"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"
	"luna/shared/validator"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func TestCreatePropertyRequest_ToModel(t *testing.T) {
	req := dto.CreatePropertyRequest{
		Name:          "Asokoro Villa",
		Description:   "Five bedroom villa",
		Location:      "Abuja",
		Address:       "Asokoro",
		PricePerNight: 150000,
		MaxGuests:     10,
		Type:          model.TypeVilla,
		Host:          &dto.HostRequest{Name: "Tunde"},
	}

	property := req.ToModel("ops")

	assert.NotEmpty(t, property.ID)
	assert.Nil(t, property.Tagline)
	assert.NotNil(t, property.Amenities)
	assert.NotNil(t, property.Images)
	assert.Equal(t, "Tunde", *property.HostName)
	assert.Nil(t, property.HostAvatarURL)
	assert.Equal(t, "ops", property.CreatedBy)
}

func TestCreatePropertyRequest_Validation(t *testing.T) {
	req := dto.CreatePropertyRequest{
		Name:        "A",
		Description: "x",
		Location:    "Lagos",
		Address:     "Ikoyi",
		Type:        "Castle",
	}

	err := validator.ValidateStruct(&req)

	fields := failure.GetFields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "type")
}

func TestUpdatePropertyRequest(t *testing.T) {
	empty := dto.UpdatePropertyRequest{}
	assert.True(t, empty.IsEmpty())

	name := "Renamed"
	req := dto.UpdatePropertyRequest{Name: &name, Host: &dto.HostRequest{Name: "Kemi"}}
	assert.False(t, req.IsEmpty())

	fields := req.UpdatedFields("ops")

	assert.Equal(t, &name, fields[model.FieldName])
	assert.Equal(t, "Kemi", fields[model.FieldHostName])
	assert.Nil(t, fields[model.FieldHostAvatarURL])
	assert.Equal(t, "ops", fields[constant.FieldModifiedBy])
}

func TestSearchCriteria_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/properties?location=%20Lagos%20&type=Villa&min_price=1000&max_price=50000.5&guests=4&amenity=Pool&amenity=WiFi", nil)

	var criteria dto.SearchCriteria
	err := criteria.FromRequest(r)

	assert.NoError(t, err)
	assert.Equal(t, "Lagos", criteria.Location)
	assert.Equal(t, model.TypeVilla, criteria.Type)
	assert.Equal(t, floatPtr(1000), criteria.MinPrice)
	assert.Equal(t, floatPtr(50000.5), criteria.MaxPrice)
	assert.Equal(t, intPtr(4), criteria.Guests)
	assert.Equal(t, []string{"Pool", "WiFi"}, criteria.Amenities)
}

func TestSearchCriteria_FromRequestInvalidNumber(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/properties?guests=many", nil)

	var criteria dto.SearchCriteria
	err := criteria.FromRequest(r)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Contains(t, failure.GetFields(err), dto.QueryParamGuests)
}

func TestSearchCriteria_Refine(t *testing.T) {
	criteria := dto.SearchCriteria{MinPrice: floatPtr(5000), MaxPrice: floatPtr(1000)}

	err := validator.ValidateStruct(&criteria)

	assert.Contains(t, failure.GetFields(err), dto.QueryParamMaxPrice)
}

func TestSearchCriteria_ToFilterGroup(t *testing.T) {
	tests := []struct {
		name     string
		criteria dto.SearchCriteria
		want     int
	}{
		{name: "empty criteria", criteria: dto.SearchCriteria{}, want: 0},
		{name: "location only", criteria: dto.SearchCriteria{Location: "Lagos"}, want: 1},
		{
			name: "every criterion",
			criteria: dto.SearchCriteria{
				Location:  "Lagos",
				Type:      model.TypeApartment,
				MinPrice:  floatPtr(1),
				MaxPrice:  floatPtr(2),
				Guests:    intPtr(2),
				Amenities: []string{"Pool", "WiFi"},
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.criteria.ToFilterGroup()

			assert.Len(t, group.Filters, tt.want)
			assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
		})
	}

	criteria := dto.SearchCriteria{Amenities: []string{" pool "}}
	group := criteria.ToFilterGroup()
	filter, ok := group.Filters[0].(gDto.Filter)

	assert.True(t, ok)
	assert.Equal(t, "pool", filter.Value)
	assert.Equal(t, gDto.FilterArrayContainsFold, filter.Operator)
	assert.Equal(t, "amenity_0", filter.ArgName)
}
