package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"luna/internal/domains/booking/model"
	"luna/internal/domains/booking/model/dto"
	"luna/shared/failure"
	"luna/shared/validator"

	"github.com/stretchr/testify/assert"
)

func validForm() dto.BookingForm {
	return dto.BookingForm{
		PropertyID:   "prop-1",
		CheckInDate:  "2025-03-01",
		CheckOutDate: "2025-03-04",
		NumGuests:    2,
		FullName:     "Chioma Obi",
		Email:        "chioma@example.com",
	}
}

func TestBookingForm_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *dto.BookingForm)
		wantField string
		wantMsg   string
	}{
		{name: "valid form"},
		{
			name:      "zero guests",
			mutate:    func(f *dto.BookingForm) { f.NumGuests = 0 },
			wantField: "num_guests",
			wantMsg:   "At least one guest is required.",
		},
		{
			name:      "negative guests",
			mutate:    func(f *dto.BookingForm) { f.NumGuests = -2 },
			wantField: "num_guests",
			wantMsg:   "At least one guest is required.",
		},
		{
			name:      "short name",
			mutate:    func(f *dto.BookingForm) { f.FullName = "A" },
			wantField: "full_name",
			wantMsg:   "Full name must be at least 2 characters.",
		},
		{
			name:      "invalid email",
			mutate:    func(f *dto.BookingForm) { f.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   "Please enter a valid email address.",
		},
		{
			name:      "missing check-in",
			mutate:    func(f *dto.BookingForm) { f.CheckInDate = "" },
			wantField: "check_in_date",
			wantMsg:   "Check-in date is required.",
		},
		{
			name:      "check-out equal to check-in",
			mutate:    func(f *dto.BookingForm) { f.CheckOutDate = f.CheckInDate },
			wantField: "check_out_date",
			wantMsg:   "Check-out date must be after check-in date.",
		},
		{
			name:      "check-out before check-in",
			mutate:    func(f *dto.BookingForm) { f.CheckOutDate = "2025-02-20" },
			wantField: "check_out_date",
			wantMsg:   "Check-out date must be after check-in date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			if tt.mutate != nil {
				tt.mutate(&form)
			}

			err := validator.ValidateStruct(&form)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, 400, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err)[tt.wantField], tt.wantMsg)
		})
	}
}

func TestBookingForm_Dates(t *testing.T) {
	form := validForm()
	form.CheckOutDate = "04/03/2025"

	checkIn, checkOut := form.Dates()

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), checkIn)
	assert.True(t, checkOut.IsZero())
}

func TestBookingForm_Normalize(t *testing.T) {
	form := dto.BookingForm{FullName: "  Chioma Obi ", Email: " chioma@example.com", Message: "\n"}
	form.Normalize()

	assert.Equal(t, "Chioma Obi", form.FullName)
	assert.Equal(t, "chioma@example.com", form.Email)
	assert.Empty(t, form.Message)
}

func TestPlaceBookingRequest_ToModel(t *testing.T) {
	req := dto.PlaceBookingRequest{
		Booking: dto.PricedBooking{
			BookingForm:    validForm(),
			PropertyName:   "Lekki Waterfront Apartment",
			PricePerNight:  45000,
			NumberOfNights: 3,
			TotalPrice:     135000,
		},
		Status:           model.StatusConfirmed,
		PaymentMethod:    model.PaymentMethodCard,
		PaymentReference: "mock_123",
	}

	booking := req.ToModel("guest")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Chioma Obi", booking.GuestName)
	assert.Nil(t, booking.GuestPhone)
	assert.Nil(t, booking.Message)
	assert.Equal(t, 3, booking.NumberOfNights)
	assert.Equal(t, float64(135000), booking.TotalPrice)
	assert.Equal(t, "mock_123", *booking.PaymentReference)
	assert.Equal(t, model.StatusConfirmed, booking.Status)

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "2025-03-01", res.CheckInDate)
	assert.Equal(t, "2025-03-04", res.CheckOutDate)
	assert.Equal(t, model.PaymentMethodCard, res.PaymentMethod)
}

func TestFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?status=Pending&guest_email=a@b.co", nil)

	var filter dto.Filter
	filter.FromRequest(r)

	assert.NoError(t, validator.ValidateStruct(&filter))
	assert.Len(t, filter.ToFilterGroup().Filters, 2)

	filter.Status = "Lost"
	assert.Error(t, validator.ValidateStruct(&filter))
}

func TestEvent_FromModel(t *testing.T) {
	method := model.PaymentMethodTransfer
	booking := model.BookingRequest{ID: "b-1", Status: model.StatusCancelled, PaymentMethod: &method}

	var event dto.Event
	event.FromModel(booking, model.StatusPending)

	assert.Equal(t, model.EventCancelled, event.Type)
	assert.Equal(t, model.StatusPending, event.PreviousStatus)
	assert.Equal(t, model.PaymentMethodTransfer, event.PaymentMethod)
}
