package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNotConfigured = errors.New("payment processor is not configured")
)

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// StripeProcessor creates card payment intents through the Stripe API.
type StripeProcessor struct {
	api      *client.API
	currency string
}

func NewStripeProcessor(secretKey, currency string, timeout time.Duration) *StripeProcessor {
	if secretKey == "" {
		return &StripeProcessor{currency: currency}
	}

	backends := stripe.NewBackends(&http.Client{Timeout: timeout})
	return &StripeProcessor{
		api:      client.New(secretKey, backends),
		currency: currency,
	}
}

// CreateIntent opens a pending charge of amount minor units (cents).
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64) (Intent, error) {
	if p.api == nil {
		return Intent{}, ErrNotConfigured
	}
	if amount <= 0 {
		return Intent{}, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("p.api.PaymentIntents.New -> %w", err)
	}

	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
