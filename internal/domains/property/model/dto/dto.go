package dto

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"luna/internal/domains/property/model"
	"luna/shared"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"
	gModel "luna/shared/model"
	"luna/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryParamLocation = "location"
	QueryParamType     = "type"
	QueryParamMinPrice = "min_price"
	QueryParamMaxPrice = "max_price"
	QueryParamGuests   = "guests"
	QueryParamAmenity  = "amenity"
)

// SortableFields lists the columns a listing query may order by.
var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldName,
	model.FieldPricePerNight,
	model.FieldMaxGuests,
	model.FieldLocation,
}

type HostRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=100"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type CreatePropertyRequest struct {
	Name          string       `json:"name"            validate:"required,min=2,max=150"`
	Tagline       string       `json:"tagline"         validate:"omitempty,max=200"`
	Description   string       `json:"description"     validate:"required"`
	Location      string       `json:"location"        validate:"required,max=100"`
	Address       string       `json:"address"         validate:"required,max=255"`
	PricePerNight float64      `json:"price_per_night" validate:"gte=0"`
	MaxGuests     int          `json:"max_guests"      validate:"gte=0"`
	Bedrooms      int          `json:"bedrooms"        validate:"gte=0"`
	Bathrooms     int          `json:"bathrooms"       validate:"gte=0"`
	Amenities     []string     `json:"amenities"       validate:"omitempty,dive,required,max=50"`
	Images        []string     `json:"images"          validate:"omitempty,dive,url"`
	Rating        *float64     `json:"rating"          validate:"omitempty,gte=0,lte=5"`
	ReviewsCount  *int         `json:"reviews_count"   validate:"omitempty,gte=0"`
	Host          *HostRequest `json:"host"            validate:"omitempty"`
	Type          string       `json:"type"            validate:"required,oneof=Apartment Villa Studio House"`
}

func optionalString(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	property := model.Property{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Tagline:       optionalString(c.Tagline),
		Description:   c.Description,
		Location:      c.Location,
		Address:       c.Address,
		PricePerNight: c.PricePerNight,
		MaxGuests:     c.MaxGuests,
		Bedrooms:      c.Bedrooms,
		Bathrooms:     c.Bathrooms,
		Amenities:     pq.StringArray(c.Amenities),
		Images:        pq.StringArray(c.Images),
		Rating:        c.Rating,
		ReviewsCount:  c.ReviewsCount,
		Type:          c.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if property.Amenities == nil {
		property.Amenities = pq.StringArray{}
	}

	if property.Images == nil {
		property.Images = pq.StringArray{}
	}

	if c.Host != nil {
		property.HostName = optionalString(c.Host.Name)
		property.HostAvatarURL = optionalString(c.Host.AvatarURL)
	}

	return property
}

type UpdatePropertyRequest struct {
	Name          *string        `db:"name"            json:"name"            validate:"omitempty,min=2,max=150"`
	Tagline       *string        `db:"tagline"         json:"tagline"         validate:"omitempty,max=200"`
	Description   *string        `db:"description"     json:"description"     validate:"omitempty,min=1"`
	Location      *string        `db:"location"        json:"location"        validate:"omitempty,min=1,max=100"`
	Address       *string        `db:"address"         json:"address"         validate:"omitempty,min=1,max=255"`
	PricePerNight *float64       `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	MaxGuests     *int           `db:"max_guests"      json:"max_guests"      validate:"omitempty,gte=0"`
	Bedrooms      *int           `db:"bedrooms"        json:"bedrooms"        validate:"omitempty,gte=0"`
	Bathrooms     *int           `db:"bathrooms"       json:"bathrooms"       validate:"omitempty,gte=0"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty,dive,required,max=50" swaggertype:"array,string"`
	Rating        *float64       `db:"rating"          json:"rating"          validate:"omitempty,gte=0,lte=5"`
	ReviewsCount  *int           `db:"reviews_count"   json:"reviews_count"   validate:"omitempty,gte=0"`
	Host          *HostRequest   `json:"host"          validate:"omitempty"`
	Type          *string        `db:"type"            json:"type"            validate:"omitempty,oneof=Apartment Villa Studio House"`
}

func (u *UpdatePropertyRequest) IsEmpty() bool {
	return reflect.ValueOf(*u).IsZero()
}

// UpdatedFields maps the non-empty fields to their columns, host included.
func (u *UpdatePropertyRequest) UpdatedFields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)

	if u.Host != nil {
		fields[model.FieldHostName] = u.Host.Name
		fields[model.FieldHostAvatarURL] = optionalString(u.Host.AvatarURL)
	}

	return fields
}

type HostResponse struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type PropertyResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Tagline       string        `json:"tagline,omitempty"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	Address       string        `json:"address"`
	PricePerNight float64       `json:"price_per_night"`
	MaxGuests     int           `json:"max_guests"`
	Bedrooms      int           `json:"bedrooms"`
	Bathrooms     int           `json:"bathrooms"`
	Amenities     []string      `json:"amenities"`
	Images        []string      `json:"images"`
	Rating        *float64      `json:"rating,omitempty"`
	ReviewsCount  *int          `json:"reviews_count,omitempty"`
	Host          *HostResponse `json:"host,omitempty"`
	Type          string        `json:"type"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Address = model.Address
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.Amenities = append([]string{}, model.Amenities...)
	r.Images = append([]string{}, model.Images...)
	r.Rating = model.Rating
	r.ReviewsCount = model.ReviewsCount
	r.Type = model.Type
	r.Metadata.FromModel(model.Metadata)

	if model.Tagline != nil {
		r.Tagline = *model.Tagline
	}

	if model.HostName != nil {
		r.Host = &HostResponse{Name: *model.HostName}

		if model.HostAvatarURL != nil {
			r.Host.AvatarURL = *model.HostAvatarURL
		}
	}
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

// SearchCriteria narrows the catalogue. Every field is optional.
type SearchCriteria struct {
	Location  string   `json:"location,omitempty"  validate:"omitempty,max=100"`
	Type      string   `json:"type,omitempty"      validate:"omitempty,oneof=Apartment Villa Studio House"`
	MinPrice  *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Guests    *int     `json:"guests,omitempty"    validate:"omitempty,gte=1"`
	Amenities []string `json:"amenities,omitempty" validate:"omitempty,dive,required"`
}

func (c *SearchCriteria) Refine() map[string][]string {
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MaxPrice < *c.MinPrice {
		return map[string][]string{QueryParamMaxPrice: {"max_price must be greater than or equal to min_price"}}
	}

	return nil
}

func parseQueryNumber[T int | float64](raw, field string, parse func(string) (T, error)) (*T, error) {
	if raw == constant.Empty {
		return nil, nil
	}

	value, err := parse(raw)
	if err != nil {
		return nil, failure.FieldError(field, field+" must be a number") //nolint:wrapcheck
	}

	return &value, nil
}

// FromRequest reads the catalogue filters from the query string.
func (c *SearchCriteria) FromRequest(r *http.Request) (err error) {
	query := r.URL.Query()

	c.Location = strings.TrimSpace(query.Get(QueryParamLocation))
	c.Type = strings.TrimSpace(query.Get(QueryParamType))
	c.Amenities = query[QueryParamAmenity]

	parseFloat := func(raw string) (float64, error) { return strconv.ParseFloat(raw, 64) }

	if c.MinPrice, err = parseQueryNumber(query.Get(QueryParamMinPrice), QueryParamMinPrice, parseFloat); err != nil {
		return err
	}

	if c.MaxPrice, err = parseQueryNumber(query.Get(QueryParamMaxPrice), QueryParamMaxPrice, parseFloat); err != nil {
		return err
	}

	if c.Guests, err = parseQueryNumber(query.Get(QueryParamGuests), QueryParamGuests, strconv.Atoi); err != nil {
		return err
	}

	return nil
}

func (c *SearchCriteria) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if c.Location != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldLocation, Value: c.Location, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if c.Type != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldType, Value: c.Type, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if c.MinPrice != nil {
		filters = append(filters, gDto.Filter{ArgName: QueryParamMinPrice, Field: model.FieldPricePerNight, Value: *c.MinPrice, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if c.MaxPrice != nil {
		filters = append(filters, gDto.Filter{ArgName: QueryParamMaxPrice, Field: model.FieldPricePerNight, Value: *c.MaxPrice, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	if c.Guests != nil {
		filters = append(filters, gDto.Filter{ArgName: QueryParamGuests, Field: model.FieldMaxGuests, Value: *c.Guests, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	for i, amenity := range c.Amenities {
		filters = append(filters, gDto.Filter{
			ArgName:  fmt.Sprintf("%s_%d", QueryParamAmenity, i),
			Field:    model.FieldAmenities,
			Value:    strings.TrimSpace(amenity),
			Operator: gDto.FilterArrayContainsFold,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string   `json:"url"`
	FileName string   `json:"file_name"`
	Images   []string `json:"images"`
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
