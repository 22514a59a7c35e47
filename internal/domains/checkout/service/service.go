package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Checkout=MockCheckoutService

import (
	"context"
	"fmt"
	"time"

	"luna/config"
	"luna/infras/otel"
	bookingModel "luna/internal/domains/booking/model"
	bookingDto "luna/internal/domains/booking/model/dto"
	bookingService "luna/internal/domains/booking/service"
	"luna/internal/domains/checkout/gateway"
	"luna/internal/domains/checkout/model"
	"luna/internal/domains/checkout/model/dto"
	"luna/internal/domains/checkout/repository"
	propertyService "luna/internal/domains/property/service"
	"luna/shared/constant"
	"luna/shared/failure"
	"luna/shared/timezone"
	"luna/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Checkout interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Submit(ctx context.Context, draftID string, form bookingDto.BookingForm) (dto.PendingBookingResponse, error)
	GetPending(ctx context.Context, draftID string) (dto.PendingBookingResponse, error)
	DeletePending(ctx context.Context, draftID string) error
	Pay(ctx context.Context, draftID string, form dto.PaymentForm) (dto.ConfirmationResponse, error)
	TransferDetails(ctx context.Context) dto.TransferDetailsResponse
}

type serviceImpl struct {
	pending         repository.Pending
	bookingService  bookingService.Booking
	propertyService propertyService.Property
	gateway         gateway.Gateway
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	pending repository.Pending,
	bookingService bookingService.Booking,
	propertyService propertyService.Property,
	gateway gateway.Gateway,
	cfg *config.Config,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		pending:         pending,
		bookingService:  bookingService,
		propertyService: propertyService,
		gateway:         gateway,
		cfg:             cfg,
		otel:            otel,
	}
}

// Quote prices the stay for the dates picked so far. Incomplete or inverted
// dates are not an error; the quote is simply not bookable.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property, err := s.propertyService.Get(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("propertyID", req.PropertyID).Msg("failed to get property for quote")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	form := bookingDto.BookingForm{CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate}
	checkIn, checkOut := form.Dates()

	res.PropertyID = property.ID
	res.PropertyName = property.Name
	res.PricePerNight = property.PricePerNight
	res.FromStay(bookingModel.CalculateStay(checkIn, checkOut, property.PricePerNight))

	return res, nil
}

// checkDraftID rejects ids that were never issued by Submit before they reach
// the store.
func checkDraftID(draftID string) error {
	if err := validator.ValidateVar(draftID, "required,uuid"); err != nil {
		return failure.FieldError(model.FieldDraftID, model.MsgDraftIDInvalid) //nolint:wrapcheck
	}

	return nil
}

// Submit prices a validated booking form and keeps it as a pending booking.
// An empty draftID starts a new draft; otherwise the existing draft is
// replaced and an unknown one is reported as missing.
func (s *serviceImpl) Submit(ctx context.Context, draftID string, form bookingDto.BookingForm) (res dto.PendingBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	createdAt := now

	if draftID != constant.Empty {
		existing, loadErr := s.load(ctx, draftID)
		if loadErr != nil {
			return res, loadErr
		}

		createdAt = existing.CreatedAt
	}

	priced, err := s.bookingService.Price(ctx, form)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if draftID == constant.Empty {
		draftID = uuid.NewString()
	}

	ttl := s.cfg.Checkout.PendingTTLSeconds

	pending := model.PendingBooking{
		DraftID:       draftID,
		PricedBooking: priced,
		CreatedAt:     createdAt,
		ExpiresAt:     now.Add(time.Duration(ttl) * time.Second),
	}

	if err = s.pending.Save(ctx, pending, ttl); err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to save pending booking")

		return res, failure.InternalErrorFromString(model.MsgProceedFailed, err) //nolint:wrapcheck
	}

	res.FromModel(pending)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, draftID string) (model.PendingBooking, error) {
	if err := checkDraftID(draftID); err != nil {
		return model.PendingBooking{}, err
	}

	pending, found, err := s.pending.Get(ctx, draftID)
	if err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to get pending booking")

		return pending, fmt.Errorf("failed to get pending booking: %w", err)
	}

	if !found {
		return pending, failure.NotFound(model.MsgPendingMissing) //nolint:wrapcheck
	}

	return pending, nil
}

func (s *serviceImpl) GetPending(ctx context.Context, draftID string) (res dto.PendingBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pending, err := s.load(ctx, draftID)
	if err != nil {
		return res, err
	}

	res.FromModel(pending)

	return res, nil
}

func (s *serviceImpl) DeletePending(ctx context.Context, draftID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, draftID); err != nil {
		return err
	}

	if err = s.pending.Delete(ctx, draftID); err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to delete pending booking")

		return fmt.Errorf("failed to delete pending booking: %w", err)
	}

	return nil
}

// Pay settles the pending booking and turns it into a booking request. The
// draft is claimed before the gateway is called, so a second payment for the
// same draft finds nothing to pay for. A declined or failed charge puts the
// draft back so the guest can retry.
func (s *serviceImpl) Pay(ctx context.Context, draftID string, form dto.PaymentForm) (res dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkDraftID(draftID); err != nil {
		return res, err
	}

	pending, found, err := s.pending.Claim(ctx, draftID)
	if err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to claim pending booking")

		return res, fmt.Errorf("failed to claim pending booking: %w", err)
	}

	if !found {
		return res, failure.NotFound(model.MsgPendingMissing) //nolint:wrapcheck
	}

	settlement, err := s.gateway.Submit(ctx, form, pending.TotalPrice)
	if err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("payment gateway failed")
		s.release(ctx, pending)

		return res, failure.BadGateway(model.MsgPaymentFailed, err) //nolint:wrapcheck
	}

	if settlement.Outcome != model.OutcomeSuccess {
		log.Warn().Str("draftID", draftID).Str("outcome", string(settlement.Outcome)).Msg("payment declined")
		s.release(ctx, pending)

		msg := settlement.Message
		if msg == constant.Empty {
			msg = model.MsgPaymentDeclined
		}

		return res, failure.PaymentRequired(msg) //nolint:wrapcheck
	}

	status := bookingModel.StatusPending
	if form.PaymentMethod == bookingModel.PaymentMethodCard {
		status = bookingModel.StatusConfirmed
	}

	booking, err := s.bookingService.Place(ctx, bookingDto.PlaceBookingRequest{
		Booking:          pending.PricedBooking,
		Status:           status,
		PaymentMethod:    form.PaymentMethod,
		PaymentReference: settlement.Reference,
	})
	if err != nil {
		// The charge went through, so the draft stays consumed and the
		// reference is logged for reconciliation.
		log.Error().Err(err).Str("draftID", draftID).Str("reference", settlement.Reference).Msg("failed to record paid booking")

		return res, failure.InternalErrorFromString(model.MsgConfirmFailed, err) //nolint:wrapcheck
	}

	res.FromBooking(booking)

	if form.PaymentMethod == bookingModel.PaymentMethodTransfer {
		details := s.TransferDetails(ctx)
		res.TransferDetails = &details
	}

	return res, nil
}

// release stores a claimed draft again for the time it had left. A draft that
// expired while the charge was attempted is dropped.
func (s *serviceImpl) release(ctx context.Context, pending model.PendingBooking) {
	ttl := int(pending.ExpiresAt.Sub(timezone.Now()).Seconds())
	if ttl <= 0 {
		log.Warn().Str("draftID", pending.DraftID).Msg("pending booking expired during payment")

		return
	}

	if err := s.pending.Save(ctx, pending, ttl); err != nil {
		log.Error().Err(err).Str("draftID", pending.DraftID).Msg("failed to release pending booking")
	}
}

func (s *serviceImpl) TransferDetails(_ context.Context) dto.TransferDetailsResponse {
	transfer := s.cfg.Checkout.Transfer

	return dto.TransferDetailsResponse{
		BankName:      transfer.BankName,
		AccountName:   transfer.AccountName,
		AccountNumber: transfer.AccountNumber,
		Currency:      s.cfg.Checkout.Currency,
	}
}
