package dto

import (
	"strings"
	"unicode/utf8"

	bookingModel "luna/internal/domains/booking/model"
	bookingDto "luna/internal/domains/booking/model/dto"
	"luna/internal/domains/checkout/model"
	"luna/shared/constant"
	"luna/shared/timezone"
	"luna/shared/validator"
)

const (
	cardNumberLength = 16
	minHolderLength  = 2
	minCVVLength     = 3
	maxCVVLength     = 4
	receiptDigits    = 4
)

const (
	msgCardNumber    = "Card number must be 16 digits."
	msgExpiryDate    = "Expiry date must be in MM/YY format."
	msgCVV           = "CVV must be 3 or 4 digits."
	msgPaymentMethod = "Please select a payment method."
)

type QuoteRequest struct {
	PropertyID   string `json:"property_id"    validate:"required,max=64"`
	CheckInDate  string `json:"check_in_date"  example:"2025-03-01"`
	CheckOutDate string `json:"check_out_date" example:"2025-03-04"`
}

// QuoteResponse leaves the derived values null when the dates do not form a
// bookable stay.
type QuoteResponse struct {
	PropertyID     string   `json:"property_id"`
	PropertyName   string   `json:"property_name"`
	PricePerNight  float64  `json:"price_per_night"`
	NumberOfNights *int     `json:"number_of_nights"`
	TotalPrice     *float64 `json:"total_price"`
	Bookable       bool     `json:"bookable"`
}

func (q *QuoteResponse) FromStay(stay bookingModel.Stay, ok bool) {
	q.Bookable = ok
	if !ok {
		return
	}

	q.NumberOfNights = &stay.Nights
	q.TotalPrice = &stay.Total
}

type PaymentForm struct {
	PaymentMethod  string `json:"payment_method"   validate:"required,oneof=card transfer"`
	CardHolderName string `json:"card_holder_name" validate:"omitempty,max=100"`
	CardNumber     string `json:"card_number"      validate:"omitempty,len=16,digits"`
	ExpiryDate     string `json:"expiry_date"      validate:"omitempty,expiry"       example:"08/27"`
	CVV            string `json:"cvv"              validate:"omitempty,min=3,max=4,digits"`
}

func (p *PaymentForm) ValidationMessages() map[string]string {
	return map[string]string{
		"payment_method.required": msgPaymentMethod,
		"payment_method.oneof":    msgPaymentMethod,
		"card_number.len":         msgCardNumber,
		"card_number.digits":      msgCardNumber,
		"expiry_date.expiry":      msgExpiryDate,
		"cvv.min":                 msgCVV,
		"cvv.max":                 msgCVV,
		"cvv.digits":              msgCVV,
	}
}

// Refine applies the card group rule: paying by card needs every card detail,
// reported as one message on card_holder_name.
func (p *PaymentForm) Refine() map[string][]string {
	if p.PaymentMethod != bookingModel.PaymentMethodCard || p.cardComplete() {
		return nil
	}

	return map[string][]string{"card_holder_name": {model.MsgCardDetailsNeeded}}
}

func (p *PaymentForm) cardComplete() bool {
	cvvLength := len(p.CVV)

	return utf8.RuneCountInString(strings.TrimSpace(p.CardHolderName)) >= minHolderLength &&
		len(p.CardNumber) == cardNumberLength && validator.IsDigits(p.CardNumber) &&
		validator.IsExpiry(p.ExpiryDate) &&
		cvvLength >= minCVVLength && cvvLength <= maxCVVLength && validator.IsDigits(p.CVV)
}

// Last4 returns the trailing digits of the card number for receipts and logs.
func (p *PaymentForm) Last4() string {
	if len(p.CardNumber) < receiptDigits {
		return constant.Empty
	}

	return p.CardNumber[len(p.CardNumber)-receiptDigits:]
}

type PendingBookingResponse struct {
	DraftID   string                   `json:"draft_id"`
	Booking   bookingDto.PricedBooking `json:"booking"`
	CreatedAt string                   `json:"created_at"`
	ExpiresAt string                   `json:"expires_at"`
}

func (r *PendingBookingResponse) FromModel(pending model.PendingBooking) {
	r.DraftID = pending.DraftID
	r.Booking = pending.PricedBooking
	r.CreatedAt = timezone.Format(pending.CreatedAt, constant.DateFormat)
	r.ExpiresAt = timezone.Format(pending.ExpiresAt, constant.DateFormat)
}

type TransferDetailsResponse struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Currency      string `json:"currency"`
}

type ConfirmationResponse struct {
	BookingID        string                   `json:"booking_id"`
	PropertyName     string                   `json:"property_name"`
	GuestName        string                   `json:"guest_name"`
	Email            string                   `json:"email"`
	TotalPrice       float64                  `json:"total_price"`
	Status           string                   `json:"status"`
	PaymentMethod    string                   `json:"payment_method"`
	PaymentReference string                   `json:"payment_reference"`
	TransferDetails  *TransferDetailsResponse `json:"transfer_details,omitempty"`
}

func (c *ConfirmationResponse) FromBooking(booking bookingDto.BookingResponse) {
	c.BookingID = booking.ID
	c.PropertyName = booking.PropertyName
	c.GuestName = booking.GuestName
	c.Email = booking.GuestEmail
	c.TotalPrice = booking.TotalPrice
	c.Status = booking.Status
	c.PaymentMethod = booking.PaymentMethod
	c.PaymentReference = booking.PaymentReference
}
