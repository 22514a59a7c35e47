package checkout

import (
	"net/http"

	"luna/infras/otel"
	bookingDto "luna/internal/domains/booking/model/dto"
	"luna/internal/domains/checkout/model/dto"
	"luna/internal/domains/checkout/service"
	"luna/shared/constant"
	"luna/shared/validator"
	"luna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamDraftID = "draft_id"

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.Get("/transfer-details", handler.GetTransferDetails)
		routerGroup.Post("/bookings", handler.SubmitBooking)
		routerGroup.Get("/bookings/{draft_id}", handler.GetPendingBooking)
		routerGroup.Put("/bookings/{draft_id}", handler.ResubmitBooking)
		routerGroup.Delete("/bookings/{draft_id}", handler.DeletePendingBooking)
		routerGroup.Post("/bookings/{draft_id}/payment", handler.Pay)
	})
}

// Quote prices the dates picked so far.
// @Summary Quote a stay
// @Description Number of nights and total price for the dates; both are null and bookable is false until check-out is after check-in.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/checkout/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// SubmitBooking validates the booking form and starts a pending booking.
// @Summary Submit a booking form
// @Description Validate the form, price it from the stored property and keep it as a pending booking for the payment step.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body bookingDto.BookingForm true "Booking Form"
// @Success 201 {object} response.Data[dto.PendingBookingResponse] "Pending booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/bookings [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	handler.submit(w, r, constant.Empty, http.StatusCreated)
}

// ResubmitBooking replaces the form of an existing draft.
// @Summary Resubmit a booking form
// @Description Replace the form of a draft issued by POST /v1/checkout/bookings. A malformed draft id is rejected with 400 and an unknown or expired draft with 404; drafts are never created here.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body bookingDto.BookingForm true "Booking Form"
// @Success 200 {object} response.Data[dto.PendingBookingResponse] "Pending booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/bookings/{draft_id} [put]
func (handler *Handler) ResubmitBooking(w http.ResponseWriter, r *http.Request) {
	handler.submit(w, r, chi.URLParam(r, requestParamDraftID), http.StatusOK)
}

func (handler *Handler) submit(w http.ResponseWriter, r *http.Request, draftID string, status int) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := bookingDto.BookingForm{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking form")

		response.WithError(w, err)

		return
	}

	pending, err := handler.service.Submit(ctx, draftID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pending booking stored: " + pending.DraftID)

	response.WithJSON(w, status, pending)
}

// GetPendingBooking loads the draft for the payment page.
// @Summary Get a pending booking
// @Tags Checkout
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.PendingBookingResponse] "Pending booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/bookings/{draft_id} [get]
func (handler *Handler) GetPendingBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingBooking")
	defer scope.End()

	pending, err := handler.service.GetPending(ctx, chi.URLParam(r, requestParamDraftID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pending)
}

// DeletePendingBooking abandons a draft.
// @Summary Delete a pending booking
// @Tags Checkout
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} response.Message "Pending booking deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/bookings/{draft_id} [delete]
func (handler *Handler) DeletePendingBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePendingBooking")
	defer scope.End()

	if err := handler.service.DeletePending(ctx, chi.URLParam(r, requestParamDraftID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pending booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Pending booking deleted")
}

// Pay settles a pending booking.
// @Summary Pay for a pending booking
// @Description Card payments confirm the booking; transfers leave it Pending and return the bank details.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body dto.PaymentForm true "Payment Form"
// @Success 201 {object} response.Data[dto.ConfirmationResponse] "Booking confirmation"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/checkout/bookings/{draft_id}/payment [post]
func (handler *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	draftID := chi.URLParam(r, requestParamDraftID)

	req := dto.PaymentForm{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate payment form")

		response.WithError(w, err)

		return
	}

	confirmation, err := handler.service.Pay(ctx, draftID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("draftID", draftID).Str("card", req.Last4()).Msg("failed to pay for booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + confirmation.BookingID + " placed with status " + confirmation.Status)

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// GetTransferDetails returns the bank account for transfer payments.
// @Summary Get bank transfer details
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[dto.TransferDetailsResponse] "Bank details"
// @Router /v1/checkout/transfer-details [get]
func (handler *Handler) GetTransferDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransferDetails")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.TransferDetails(ctx))
}
