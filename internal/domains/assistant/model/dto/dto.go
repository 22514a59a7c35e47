package dto

import (
	"strings"

	propertyDto "luna/internal/domains/property/model/dto"
	"luna/shared/constant"
)

// descriptionLabels are prefixes a model sometimes echoes from the prompt.
var descriptionLabels = []string{"Description:", "description:", "**Description:**"}

type SearchQueryRequest struct {
	Query string `json:"query" validate:"required,max=500" example:"2 bedroom in Lagos for 4 guests with WiFi under 60000"`
}

// SearchQueryResponse holds the structured criteria pulled out of a free text
// query. Anything the query does not mention stays empty.
type SearchQueryResponse struct {
	Location  string   `json:"location,omitempty"  validate:"omitempty,max=100"`
	MinPrice  *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Guests    *int     `json:"guests,omitempty"    validate:"omitempty,gte=1"`
	Amenities []string `json:"amenities,omitempty" validate:"omitempty,dive,required,max=50"`
}

func (s *SearchQueryResponse) Normalize() {
	s.Location = strings.TrimSpace(s.Location)

	amenities := make([]string, 0, len(s.Amenities))

	for _, amenity := range s.Amenities {
		if amenity = strings.TrimSpace(amenity); amenity != constant.Empty {
			amenities = append(amenities, amenity)
		}
	}

	s.Amenities = nil
	if len(amenities) > 0 {
		s.Amenities = amenities
	}
}

// ToCriteria maps the extracted fields onto the catalogue filters. An
// inverted price range is swapped rather than rejected.
func (s *SearchQueryResponse) ToCriteria() propertyDto.SearchCriteria {
	criteria := propertyDto.SearchCriteria{
		Location:  s.Location,
		MinPrice:  s.MinPrice,
		MaxPrice:  s.MaxPrice,
		Guests:    s.Guests,
		Amenities: s.Amenities,
	}

	if criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MaxPrice < *criteria.MinPrice {
		criteria.MinPrice, criteria.MaxPrice = criteria.MaxPrice, criteria.MinPrice
	}

	return criteria
}

type SearchResponse struct {
	Criteria   SearchQueryResponse            `json:"criteria"`
	Properties []propertyDto.PropertyResponse `json:"properties"`
	TotalPage  int                            `json:"total_page"`
	TotalData  int                            `json:"total_data"`
}

func (s *SearchResponse) FromResult(criteria SearchQueryResponse, result propertyDto.GetPropertiesResponse) {
	s.Criteria = criteria
	s.Properties = result.Properties
	s.TotalPage = result.TotalPage
	s.TotalData = result.TotalData
}

type DescriptionRequest struct {
	PropertyType        string   `json:"property_type"         validate:"required,max=50"  example:"Villa"`
	Location            string   `json:"location"              validate:"required,max=100" example:"Lekki, Lagos"`
	NumberOfBedrooms    int      `json:"number_of_bedrooms"    validate:"gte=0"`
	NumberOfBathrooms   int      `json:"number_of_bathrooms"   validate:"gte=0"`
	Amenities           []string `json:"amenities"             validate:"omitempty,dive,required,max=50"`
	UniqueSellingPoints []string `json:"unique_selling_points" validate:"omitempty,dive,required,max=200"`
}

type DescriptionResponse struct {
	Description string `json:"description" validate:"required"`
}

// Normalize trims the text and drops a leading label the model may repeat.
func (d *DescriptionResponse) Normalize() {
	text := strings.TrimSpace(d.Description)

	for _, label := range descriptionLabels {
		if strings.HasPrefix(text, label) {
			text = strings.TrimSpace(strings.TrimPrefix(text, label))

			break
		}
	}

	d.Description = text
}

type RecommendationRequest struct {
	Location       string   `json:"location"         validate:"required,max=100"`
	Price          float64  `json:"price"            validate:"gte=0"`
	NumberOfGuests int      `json:"number_of_guests" validate:"gte=1"`
	Amenities      []string `json:"amenities"        validate:"omitempty,dive,required,max=50"`
	Description    string   `json:"description"      validate:"required,max=5000"`
}

func (r *RecommendationRequest) FromProperty(property propertyDto.PropertyResponse) {
	r.Location = property.Location
	r.Price = property.PricePerNight
	r.NumberOfGuests = max(property.MaxGuests, 1)
	r.Amenities = property.Amenities
	r.Description = property.Description
}

type Recommendation struct {
	Location        string   `json:"location"         validate:"required"`
	Price           float64  `json:"price"            validate:"gte=0"`
	NumberOfGuests  int      `json:"number_of_guests" validate:"gte=0"`
	Amenities       []string `json:"amenities"`
	Description     string   `json:"description"      validate:"required"`
	SimilarityScore float64  `json:"similarity_score" validate:"gte=0,lte=1"`
}

type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations" validate:"dive"`
}

func (r *RecommendationsResponse) Normalize() {
	if r.Recommendations == nil {
		r.Recommendations = []Recommendation{}
	}

	for i := range r.Recommendations {
		r.Recommendations[i].Location = strings.TrimSpace(r.Recommendations[i].Location)
		r.Recommendations[i].Description = strings.TrimSpace(r.Recommendations[i].Description)
	}
}
