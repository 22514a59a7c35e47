package model

import (
	"luna/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID            = "id"
	FieldName          = "name"
	FieldLocation      = "location"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
	FieldHostName      = "host_name"
	FieldHostAvatarURL = "host_avatar_url"
)

const (
	TypeApartment = "Apartment"
	TypeVilla     = "Villa"
	TypeStudio    = "Studio"
	TypeHouse     = "House"
)

type Property struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Tagline       *string        `db:"tagline"`
	Description   string         `db:"description"`
	Location      string         `db:"location"`
	Address       string         `db:"address"`
	PricePerNight float64        `db:"price_per_night"`
	MaxGuests     int            `db:"max_guests"`
	Bedrooms      int            `db:"bedrooms"`
	Bathrooms     int            `db:"bathrooms"`
	Amenities     pq.StringArray `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	Rating        *float64       `db:"rating"`
	ReviewsCount  *int           `db:"reviews_count"`
	HostName      *string        `db:"host_name"`
	HostAvatarURL *string        `db:"host_avatar_url"`
	Type          string         `db:"type"`
	model.Metadata
}
