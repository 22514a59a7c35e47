package dto

import (
	"net/http"
	"strings"
	"time"

	"luna/internal/domains/booking/model"
	"luna/shared"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	gModel "luna/shared/model"
	"luna/shared/timezone"

	"github.com/google/uuid"
)

const (
	QueryParamPropertyID = "property_id"
	QueryParamStatus     = "status"
	QueryParamGuestEmail = "guest_email"
)

const (
	msgGuestsRequired   = "At least one guest is required."
	msgFullNameLength   = "Full name must be at least 2 characters."
	msgEmailInvalid     = "Please enter a valid email address."
	msgCheckInRequired  = "Check-in date is required."
	msgCheckOutRequired = "Check-out date is required."
	msgCheckOutOrder    = "Check-out date must be after check-in date."
)

// SortableFields lists the columns a booking query may order by.
var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldRequestedAt,
	model.FieldCheckInDate,
	model.FieldTotalPrice,
}

// BookingForm is the guest's stay and contact details for one property.
type BookingForm struct {
	PropertyID   string `json:"property_id"    validate:"required,max=64"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02" example:"2025-03-01"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02" example:"2025-03-04"`
	NumGuests    int    `json:"num_guests"     validate:"gte=1"`
	FullName     string `json:"full_name"      validate:"required,min=2,max=100"`
	Email        string `json:"email"          validate:"required,email,max=100"`
	Phone        string `json:"phone"          validate:"omitempty,max=20"`
	Message      string `json:"message"        validate:"omitempty,max=1000"`
}

func (f *BookingForm) ValidationMessages() map[string]string {
	return map[string]string{
		"num_guests.gte":          msgGuestsRequired,
		"full_name.required":      msgFullNameLength,
		"full_name.min":           msgFullNameLength,
		"email.required":          msgEmailInvalid,
		"email.email":             msgEmailInvalid,
		"check_in_date.required":  msgCheckInRequired,
		"check_out_date.required": msgCheckOutRequired,
	}
}

// Refine attaches the stay order rule to check_out_date.
func (f *BookingForm) Refine() map[string][]string {
	checkIn, checkOut := f.Dates()
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil
	}

	if !checkOut.After(checkIn) {
		return map[string][]string{"check_out_date": {msgCheckOutOrder}}
	}

	return nil
}

// Dates parses the stay dates. An unparsable date comes back as the zero time.
func (f *BookingForm) Dates() (checkIn, checkOut time.Time) {
	checkIn, _ = time.Parse(constant.DateOnlyFormat, f.CheckInDate)
	checkOut, _ = time.Parse(constant.DateOnlyFormat, f.CheckOutDate)

	return checkIn, checkOut
}

func (f *BookingForm) Normalize() {
	f.PropertyID = strings.TrimSpace(f.PropertyID)
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

// PricedBooking is a booking form completed with the stored property's name
// and price and the derived stay.
type PricedBooking struct {
	BookingForm
	PropertyName   string  `json:"property_name"`
	PricePerNight  float64 `json:"price_per_night"`
	NumberOfNights int     `json:"number_of_nights"`
	TotalPrice     float64 `json:"total_price"`
}

type PlaceBookingRequest struct {
	Booking          PricedBooking
	Status           string
	PaymentMethod    string
	PaymentReference string
}

func optionalString(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func (p *PlaceBookingRequest) ToModel(user string) model.BookingRequest {
	checkIn, checkOut := p.Booking.Dates()
	now := timezone.Now()

	return model.BookingRequest{
		ID:               uuid.NewString(),
		PropertyID:       p.Booking.PropertyID,
		PropertyName:     p.Booking.PropertyName,
		GuestName:        p.Booking.FullName,
		GuestEmail:       p.Booking.Email,
		GuestPhone:       optionalString(p.Booking.Phone),
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumGuests:        p.Booking.NumGuests,
		Message:          optionalString(p.Booking.Message),
		NumberOfNights:   p.Booking.NumberOfNights,
		TotalPrice:       p.Booking.TotalPrice,
		PaymentMethod:    optionalString(p.PaymentMethod),
		PaymentReference: optionalString(p.PaymentReference),
		Status:           p.Status,
		RequestedAt:      now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled Completed"`
}

// Filter narrows the booking list. Every field is optional.
type Filter struct {
	PropertyID string `json:"property_id" validate:"omitempty,max=64"`
	Status     string `json:"status"      validate:"omitempty,oneof=Pending Confirmed Cancelled Completed"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email"`
}

func (f *Filter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.PropertyID = strings.TrimSpace(query.Get(QueryParamPropertyID))
	f.Status = strings.TrimSpace(query.Get(QueryParamStatus))
	f.GuestEmail = strings.TrimSpace(query.Get(QueryParamGuestEmail))
}

func (f *Filter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.PropertyID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldPropertyID, Value: f.PropertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.GuestEmail != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldGuestEmail, Value: f.GuestEmail, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

type BookingResponse struct {
	ID               string  `json:"id"`
	PropertyID       string  `json:"property_id"`
	PropertyName     string  `json:"property_name"`
	GuestName        string  `json:"guest_name"`
	GuestEmail       string  `json:"guest_email"`
	GuestPhone       string  `json:"guest_phone,omitempty"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	NumGuests        int     `json:"num_guests"`
	Message          string  `json:"message,omitempty"`
	NumberOfNights   int     `json:"number_of_nights"`
	TotalPrice       float64 `json:"total_price"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	Status           string  `json:"status"`
	RequestedAt      string  `json:"requested_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.BookingRequest) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.PropertyName = model.PropertyName
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NumGuests = model.NumGuests
	r.NumberOfNights = model.NumberOfNights
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.RequestedAt = timezone.Format(model.RequestedAt, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)

	if model.GuestPhone != nil {
		r.GuestPhone = *model.GuestPhone
	}

	if model.Message != nil {
		r.Message = *model.Message
	}

	if model.PaymentMethod != nil {
		r.PaymentMethod = *model.PaymentMethod
	}

	if model.PaymentReference != nil {
		r.PaymentReference = *model.PaymentReference
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Event is the message published on the booking topic.
type Event struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	PropertyID     string    `json:"property_id"`
	PropertyName   string    `json:"property_name"`
	GuestEmail     string    `json:"guest_email"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalPrice     float64   `json:"total_price"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (e *Event) FromModel(booking model.BookingRequest, previousStatus string) {
	e.Type = model.EventType(booking.Status)
	e.BookingID = booking.ID
	e.PropertyID = booking.PropertyID
	e.PropertyName = booking.PropertyName
	e.GuestEmail = booking.GuestEmail
	e.Status = booking.Status
	e.PreviousStatus = previousStatus
	e.TotalPrice = booking.TotalPrice
	e.OccurredAt = timezone.Now()

	if booking.PaymentMethod != nil {
		e.PaymentMethod = *booking.PaymentMethod
	}
}
