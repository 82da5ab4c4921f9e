package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// ErrProvider wraps every failure returned by Stripe so callers can map it
// to a gateway error without knowing the SDK's error types.
var ErrProvider = errors.New("payment provider request failed")

// Client creates card PaymentIntents in USD.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// CreateIntent requests a PaymentIntent for the given amount in minor
// currency units and returns its client secret. Each request carries a
// fresh idempotency key so a retried HTTP call cannot double-create.
func (c *Client) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a two-decimal currency amount to integer minor units
// (dollars to cents), rounding to absorb float representation noise.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
