package dto_test

import (
	"testing"

	bookingModel "luna/internal/domains/booking/model"
	"luna/internal/domains/checkout/model/dto"
	"luna/shared/failure"
	"luna/shared/validator"

	"github.com/stretchr/testify/assert"
)

const cardDetailsMessage = "Please fill in all card details correctly if paying by card."

func validCard() dto.PaymentForm {
	return dto.PaymentForm{
		PaymentMethod:  "card",
		CardHolderName: "Chioma Obi",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "08/27",
		CVV:            "123",
	}
}

func TestPaymentForm_Validation(t *testing.T) {
	tests := []struct {
		name       string
		form       func() dto.PaymentForm
		wantFields map[string]string
	}{
		{name: "complete card", form: validCard},
		{name: "transfer alone", form: func() dto.PaymentForm { return dto.PaymentForm{PaymentMethod: "transfer"} }},
		{
			name: "four digit cvv",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CVV = "1234"

				return f
			},
		},
		{
			name: "fifteen digit card number",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CardNumber = "411111111111111"

				return f
			},
			wantFields: map[string]string{
				"card_number":      "Card number must be 16 digits.",
				"card_holder_name": cardDetailsMessage,
			},
		},
		{
			name: "card without holder",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CardHolderName = ""

				return f
			},
			wantFields: map[string]string{"card_holder_name": cardDetailsMessage},
		},
		{
			name: "card holder of one accented letter",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CardHolderName = "É"

				return f
			},
			wantFields: map[string]string{"card_holder_name": cardDetailsMessage},
		},
		{
			name: "card holder of two accented letters",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CardHolderName = "Éé"

				return f
			},
		},
		{
			name: "card with bad expiry",
			form: func() dto.PaymentForm {
				f := validCard()
				f.ExpiryDate = "13/27"

				return f
			},
			wantFields: map[string]string{
				"expiry_date":      "Expiry date must be in MM/YY format.",
				"card_holder_name": cardDetailsMessage,
			},
		},
		{
			name: "card with letters in cvv",
			form: func() dto.PaymentForm {
				f := validCard()
				f.CVV = "12a"

				return f
			},
			wantFields: map[string]string{
				"cvv":              "CVV must be 3 or 4 digits.",
				"card_holder_name": cardDetailsMessage,
			},
		},
		{
			name: "transfer ignores partial card details",
			form: func() dto.PaymentForm {
				return dto.PaymentForm{PaymentMethod: "transfer", CardHolderName: "X"}
			},
		},
		{
			name:       "missing method",
			form:       func() dto.PaymentForm { return dto.PaymentForm{} },
			wantFields: map[string]string{"payment_method": "Please select a payment method."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := tt.form()

			err := validator.ValidateStruct(&form)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			fields := failure.GetFields(err)
			assert.Len(t, fields, len(tt.wantFields))

			for field, msg := range tt.wantFields {
				assert.Contains(t, fields[field], msg)
			}
		})
	}
}

func TestPaymentForm_Last4(t *testing.T) {
	form := validCard()
	assert.Equal(t, "1111", form.Last4())

	transfer := dto.PaymentForm{PaymentMethod: "transfer"}
	assert.Empty(t, transfer.Last4())
}

func TestQuoteResponse_FromStay(t *testing.T) {
	var bookable dto.QuoteResponse
	bookable.FromStay(bookingModel.Stay{Nights: 2, Total: 90000}, true)

	assert.True(t, bookable.Bookable)
	assert.Equal(t, 2, *bookable.NumberOfNights)
	assert.Equal(t, float64(90000), *bookable.TotalPrice)

	var blocked dto.QuoteResponse
	blocked.FromStay(bookingModel.Stay{}, false)

	assert.False(t, blocked.Bookable)
	assert.Nil(t, blocked.NumberOfNights)
	assert.Nil(t, blocked.TotalPrice)
}
