package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"

	"luna/infras/otel"
	"luna/internal/domains/checkout/model"
	"luna/internal/domains/checkout/model/dto"
	"luna/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAmountAttribute = "payment.amount"
	otelMethodAttribute = "payment.method"
	referencePrefix     = "mock_"
)

// Gateway settles a charge. A declined charge is an outcome, not an error;
// an error means the gateway could not be reached or answered garbage.
type Gateway interface {
	Submit(ctx context.Context, form dto.PaymentForm, amount float64) (model.Settlement, error)
}

type simulatedImpl struct {
	otel otel.Otel
}

// NewSimulated returns a gateway that accepts every charge and never moves money.
func NewSimulated(otel otel.Otel) Gateway {
	return &simulatedImpl{otel: otel}
}

func (g *simulatedImpl) Submit(ctx context.Context, form dto.PaymentForm, amount float64) (model.Settlement, error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gateway.Submit")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		otelAmountAttribute: amount,
		otelMethodAttribute: form.PaymentMethod,
	})

	reference := referencePrefix + uuid.NewString()

	log.Info().
		Str("method", form.PaymentMethod).
		Str("last4", form.Last4()).
		Float64("amount", amount).
		Str("reference", reference).
		Msg("simulated payment accepted")

	return model.Settlement{
		Outcome:   model.OutcomeSuccess,
		Reference: reference,
	}, nil
}
