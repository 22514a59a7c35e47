package model

import (
	"time"

	bookingDto "luna/internal/domains/booking/model/dto"
)

const (
	EntityName       = "pendingBooking"
	PendingKeyPrefix = "pendingBooking"
	FieldDraftID     = "draft_id"
)

const (
	MsgPendingMissing    = "No pending booking details found. Please start a new booking."
	MsgDraftIDInvalid    = "Draft id is not valid."
	MsgProceedFailed     = "Could not proceed to payment. Please try again."
	MsgPaymentFailed     = "Payment could not be processed. Please try again."
	MsgPaymentDeclined   = "Your payment was declined. Please check your details or try another method."
	MsgConfirmFailed     = "Payment was received but the booking could not be saved. Please contact support."
	MsgCardDetailsNeeded = "Please fill in all card details correctly if paying by card."
)

// PendingBooking bridges the booking form and the payment step. It lives in
// Redis under its draft id until it is paid for, abandoned or expired.
type PendingBooking struct {
	DraftID string `json:"draft_id"`
	bookingDto.PricedBooking
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeDeclined Outcome = "declined"
)

// Settlement is what the payment gateway answered for one charge.
type Settlement struct {
	Outcome   Outcome
	Reference string
	Message   string
}
