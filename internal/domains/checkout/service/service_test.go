package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"luna/config"
	"luna/infras/otel"
	"luna/infras/otel/mocks"
	bookingMocks "luna/internal/domains/booking/mocks"
	bookingModel "luna/internal/domains/booking/model"
	bookingDto "luna/internal/domains/booking/model/dto"
	checkoutMocks "luna/internal/domains/checkout/mocks"
	"luna/internal/domains/checkout/model"
	"luna/internal/domains/checkout/model/dto"
	"luna/internal/domains/checkout/service"
	propertyMocks "luna/internal/domains/property/mocks"
	propertyDto "luna/internal/domains/property/model/dto"
	"luna/shared/constant"
	"luna/shared/failure"
)

type fixture struct {
	pending  *checkoutMocks.MockPending
	booking  *bookingMocks.MockBookingService
	property *propertyMocks.MockPropertyService
	gateway  *checkoutMocks.MockGateway
	svc      service.Checkout
}

func newFixture(t *testing.T) fixture {
	return newTracedFixture(t, mocks.NewOtel())
}

func newTracedFixture(t *testing.T, ot otel.Otel) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Checkout.PendingTTLSeconds = 3600
	cfg.Checkout.Currency = "NGN"
	cfg.Checkout.Transfer.BankName = "Luna Bank Plc"
	cfg.Checkout.Transfer.AccountName = "Luna Shortlets Nigeria"
	cfg.Checkout.Transfer.AccountNumber = "0123456789"

	f := fixture{
		pending:  checkoutMocks.NewMockPending(ctrl),
		booking:  bookingMocks.NewMockBookingService(ctrl),
		property: propertyMocks.NewMockPropertyService(ctrl),
		gateway:  checkoutMocks.NewMockGateway(ctrl),
	}
	f.svc = service.New(f.pending, f.booking, f.property, f.gateway, cfg, ot)

	return f
}

func bookingForm() bookingDto.BookingForm {
	return bookingDto.BookingForm{
		PropertyID:   "prop-1",
		CheckInDate:  "2025-03-01",
		CheckOutDate: "2025-03-04",
		NumGuests:    2,
		FullName:     "Chioma Obi",
		Email:        "chioma@example.com",
	}
}

func priced() bookingDto.PricedBooking {
	return bookingDto.PricedBooking{
		BookingForm:    bookingForm(),
		PropertyName:   "Lekki Waterfront Apartment",
		PricePerNight:  45000,
		NumberOfNights: 3,
		TotalPrice:     135000,
	}
}

const draftID = "6f1d2c3b-8a4e-4f5a-9b6c-7d8e9f0a1b2c"

func pendingBooking() model.PendingBooking {
	now := time.Now()

	return model.PendingBooking{
		DraftID:       draftID,
		PricedBooking: priced(),
		CreatedAt:     now.Add(-10 * time.Minute),
		ExpiresAt:     now.Add(50 * time.Minute),
	}
}

func TestCheckoutService_Quote(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights *int
		wantTotal  *float64
	}{
		{name: "three nights", checkIn: "2025-03-01", checkOut: "2025-03-04", wantNights: intPtr(3), wantTotal: floatPtr(135000)},
		{name: "same day", checkIn: "2025-03-01", checkOut: "2025-03-01"},
		{name: "inverted", checkIn: "2025-03-04", checkOut: "2025-03-01"},
		{name: "missing check-out", checkIn: "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.property.EXPECT().Get(gomock.Any(), "prop-1").Return(propertyDto.PropertyResponse{ID: "prop-1", PricePerNight: 45000}, nil)

			res, err := f.svc.Quote(context.Background(), dto.QuoteRequest{PropertyID: "prop-1", CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights != nil, res.Bookable)
			assert.Equal(t, tt.wantNights, res.NumberOfNights)
			assert.Equal(t, tt.wantTotal, res.TotalPrice)
		})
	}
}

func TestCheckoutService_Submit(t *testing.T) {
	t.Run("new draft", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().Price(gomock.Any(), bookingForm()).Return(priced(), nil)
		f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), 3600).DoAndReturn(func(_ context.Context, pending model.PendingBooking, _ int) error {
			assert.NotEmpty(t, pending.DraftID)
			assert.Equal(t, 135000.0, pending.TotalPrice)
			assert.True(t, pending.ExpiresAt.After(pending.CreatedAt))

			return nil
		})

		res, err := f.svc.Submit(context.Background(), "", bookingForm())

		assert.NoError(t, err)
		assert.NotEmpty(t, res.DraftID)
		assert.Equal(t, "Lekki Waterfront Apartment", res.Booking.PropertyName)
	})

	t.Run("resubmission keeps draft id", func(t *testing.T) {
		f := newFixture(t)
		existing := pendingBooking()

		f.pending.EXPECT().Get(gomock.Any(), draftID).Return(existing, true, nil)
		f.booking.EXPECT().Price(gomock.Any(), gomock.Any()).Return(priced(), nil)
		f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pending model.PendingBooking, _ int) error {
			assert.Equal(t, existing.CreatedAt, pending.CreatedAt)

			return nil
		})

		res, err := f.svc.Submit(context.Background(), draftID, bookingForm())

		assert.NoError(t, err)
		assert.Equal(t, draftID, res.DraftID)
	})

	t.Run("resubmission of unknown draft", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Get(gomock.Any(), draftID).Return(model.PendingBooking{}, false, nil)

		_, err := f.svc.Submit(context.Background(), draftID, bookingForm())

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("resubmission with malformed draft id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(context.Background(), "../../admin", bookingForm())

		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, failure.GetFields(err), "draft_id")
	})

	t.Run("guest cap is reported without storing", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().Price(gomock.Any(), gomock.Any()).Return(bookingDto.PricedBooking{}, failure.FieldError("num_guests", "too many"))

		_, err := f.svc.Submit(context.Background(), "", bookingForm())

		assert.Contains(t, failure.GetFields(err), "num_guests")
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().Price(gomock.Any(), gomock.Any()).Return(priced(), nil)
		f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := f.svc.Submit(context.Background(), "", bookingForm())

		assert.Equal(t, 500, failure.GetCode(err))
		assert.EqualError(t, err, "Could not proceed to payment. Please try again.")
	})
}

func TestCheckoutService_GetPending(t *testing.T) {
	t.Run("missing draft", func(t *testing.T) {
		f := newFixture(t)
		f.pending.EXPECT().Get(gomock.Any(), draftID).Return(model.PendingBooking{}, false, nil)

		_, err := f.svc.GetPending(context.Background(), draftID)

		assert.Equal(t, 404, failure.GetCode(err))
		assert.EqualError(t, err, "No pending booking details found. Please start a new booking.")
	})

	t.Run("round trips unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.pending.EXPECT().Get(gomock.Any(), draftID).Return(pendingBooking(), true, nil)

		res, err := f.svc.GetPending(context.Background(), draftID)

		assert.NoError(t, err)
		assert.Equal(t, priced(), res.Booking)
	})
}

func TestCheckoutService_DeletePending(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().Get(gomock.Any(), draftID).Return(pendingBooking(), true, nil)
	f.pending.EXPECT().Delete(gomock.Any(), draftID).Return(nil)

	assert.NoError(t, f.svc.DeletePending(context.Background(), draftID))
}

func cardPayment() dto.PaymentForm {
	return dto.PaymentForm{
		PaymentMethod:  "card",
		CardHolderName: "Chioma Obi",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "08/27",
		CVV:            "123",
	}
}

func TestCheckoutService_Pay(t *testing.T) {
	t.Run("card payment confirms booking", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(pendingBooking(), true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), cardPayment(), 135000.0).Return(model.Settlement{Outcome: model.OutcomeSuccess, Reference: "mock_1"}, nil)
		f.booking.EXPECT().Place(gomock.Any(), bookingDto.PlaceBookingRequest{
			Booking:          priced(),
			Status:           bookingModel.StatusConfirmed,
			PaymentMethod:    "card",
			PaymentReference: "mock_1",
		}).Return(bookingDto.BookingResponse{
			ID:               "b-1",
			PropertyName:     "Lekki Waterfront Apartment",
			GuestName:        "Chioma Obi",
			GuestEmail:       "chioma@example.com",
			TotalPrice:       135000,
			Status:           bookingModel.StatusConfirmed,
			PaymentMethod:    "card",
			PaymentReference: "mock_1",
		}, nil)

		res, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.NoError(t, err)
		assert.Equal(t, "b-1", res.BookingID)
		assert.Equal(t, "Lekki Waterfront Apartment", res.PropertyName)
		assert.Equal(t, "chioma@example.com", res.Email)
		assert.Equal(t, bookingModel.StatusConfirmed, res.Status)
		assert.Nil(t, res.TransferDetails)
	})

	t.Run("transfer stays pending with bank details", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(pendingBooking(), true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{Outcome: model.OutcomeSuccess, Reference: "mock_2"}, nil)
		f.booking.EXPECT().Place(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req bookingDto.PlaceBookingRequest) (bookingDto.BookingResponse, error) {
			assert.Equal(t, bookingModel.StatusPending, req.Status)

			return bookingDto.BookingResponse{ID: "b-2", Status: req.Status}, nil
		})

		res, err := f.svc.Pay(context.Background(), draftID, dto.PaymentForm{PaymentMethod: "transfer"})

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.StatusPending, res.Status)
		assert.Equal(t, "0123456789", res.TransferDetails.AccountNumber)
	})

	t.Run("declined keeps pending record", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(pendingBooking(), true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{Outcome: model.OutcomeDeclined}, nil)
		f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pending model.PendingBooking, ttl int) error {
			assert.Equal(t, draftID, pending.DraftID)
			assert.Positive(t, ttl)
			assert.LessOrEqual(t, ttl, 3000)

			return nil
		})

		_, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.Equal(t, 402, failure.GetCode(err))
	})

	t.Run("gateway error keeps pending record", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(pendingBooking(), true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{}, errors.New("timeout"))
		f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pending model.PendingBooking, _ int) error {
			assert.Equal(t, 135000.0, pending.TotalPrice)

			return nil
		})

		_, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.Equal(t, 502, failure.GetCode(err))
	})

	t.Run("no pending booking", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(model.PendingBooking{}, false, nil)

		_, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("draft expired during declined charge is not restored", func(t *testing.T) {
		f := newFixture(t)
		expired := pendingBooking()
		expired.ExpiresAt = time.Now().Add(-time.Second)

		f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(expired, true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{Outcome: model.OutcomeDeclined}, nil)

		_, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.Equal(t, 402, failure.GetCode(err))
	})

	t.Run("failed booking record keeps draft consumed", func(t *testing.T) {
		f := newFixture(t)

		f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(pendingBooking(), true, nil)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{Outcome: model.OutcomeSuccess, Reference: "mock_3"}, nil)
		f.booking.EXPECT().Place(gomock.Any(), gomock.Any()).Return(bookingDto.BookingResponse{}, errors.New("insert failed"))

		_, err := f.svc.Pay(context.Background(), draftID, cardPayment())

		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("malformed draft id never reaches the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Pay(context.Background(), "draft-1", cardPayment())

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("second payment of the same draft is not charged", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(pendingBooking(), true, nil),
			f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(model.PendingBooking{}, false, nil),
		)
		f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Settlement{Outcome: model.OutcomeSuccess, Reference: "mock_4"}, nil).Times(1)
		f.booking.EXPECT().Place(gomock.Any(), gomock.Any()).Return(bookingDto.BookingResponse{ID: "b-4", Status: bookingModel.StatusConfirmed}, nil).Times(1)

		first, err := f.svc.Pay(context.Background(), draftID, cardPayment())
		assert.NoError(t, err)
		assert.Equal(t, "b-4", first.BookingID)

		_, err = f.svc.Pay(context.Background(), draftID, cardPayment())
		assert.Equal(t, 404, failure.GetCode(err))
		assert.EqualError(t, err, "No pending booking details found. Please start a new booking.")
	})
}

func TestCheckoutService_TransferDetails(t *testing.T) {
	f := newFixture(t)

	res := f.svc.TransferDetails(context.Background())

	assert.Equal(t, dto.TransferDetailsResponse{
		BankName:      "Luna Bank Plc",
		AccountName:   "Luna Shortlets Nigeria",
		AccountNumber: "0123456789",
		Currency:      "NGN",
	}, res)
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func recordedSpan(t *testing.T, recorder *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()

	for _, span := range recorder.Ended() {
		if span.Name() == name {
			return span
		}
	}

	require.Failf(t, "span not recorded", "no ended span named %s", name)

	return nil
}

func TestCheckoutService_PayTracing(t *testing.T) {
	tests := []struct {
		name       string
		settlement model.Settlement
		gatewayErr error
		wantCode   int
		wantStatus codes.Code
		wantEvent  string
	}{
		{
			name:       "gateway failure marks the span failed",
			gatewayErr: errors.New("connection reset"),
			wantCode:   502,
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
		{
			name:       "declined charge is recorded as a rejection",
			settlement: model.Settlement{Outcome: model.OutcomeDeclined},
			wantCode:   402,
			wantStatus: codes.Unset,
			wantEvent:  "request.rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			f := newTracedFixture(t, otel.NewWithProvider(provider))

			f.pending.EXPECT().Claim(gomock.Any(), draftID).Return(pendingBooking(), true, nil)
			f.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.settlement, tt.gatewayErr)
			f.pending.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			_, err := f.svc.Pay(context.Background(), draftID, cardPayment())
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			span := recordedSpan(t, recorder, constant.OtelServiceScopeName+".Pay")
			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, tt.wantEvent, span.Events()[0].Name)
		})
	}
}
