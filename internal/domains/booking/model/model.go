package model

import (
	"slices"
	"time"

	"luna/shared/model"
)

const (
	TableName  = "booking_requests"
	EntityName = "booking"

	FieldID               = "id"
	FieldPropertyID       = "property_id"
	FieldGuestEmail       = "guest_email"
	FieldCheckInDate      = "check_in_date"
	FieldTotalPrice       = "total_price"
	FieldStatus           = "status"
	FieldRequestedAt      = "requested_at"
	FieldPaymentReference = "payment_reference"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

const (
	EventRequested = "booking.requested"
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
	EventCompleted = "booking.completed"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

var events = map[string]string{
	StatusPending:   EventRequested,
	StatusConfirmed: EventConfirmed,
	StatusCancelled: EventCancelled,
	StatusCompleted: EventCompleted,
}

// CanTransition reports whether a booking in status from may move to status to.
// Cancelled and Completed are terminal.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// EventType names the event published when a booking enters status.
func EventType(status string) string {
	return events[status]
}

type BookingRequest struct {
	ID               string    `db:"id"`
	PropertyID       string    `db:"property_id"`
	PropertyName     string    `db:"property_name"`
	GuestName        string    `db:"guest_name"`
	GuestEmail       string    `db:"guest_email"`
	GuestPhone       *string   `db:"guest_phone"`
	CheckInDate      time.Time `db:"check_in_date"`
	CheckOutDate     time.Time `db:"check_out_date"`
	NumGuests        int       `db:"num_guests"`
	Message          *string   `db:"message"`
	NumberOfNights   int       `db:"number_of_nights"`
	TotalPrice       float64   `db:"total_price"`
	PaymentMethod    *string   `db:"payment_method"`
	PaymentReference *string   `db:"payment_reference"`
	Status           string    `db:"status"`
	RequestedAt      time.Time `db:"requested_at"`
	model.Metadata
}
