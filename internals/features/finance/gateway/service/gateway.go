package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrMissingPublicKey     = errors.New("payment gateway public key is missing")
	ErrMissingPrivateKey    = errors.New("payment gateway private key is missing")
	ErrMissingLinkID        = errors.New("payment gateway response has no link id")
)

// GatewayError carries a non-2xx answer from the provider.
type GatewayError struct {
	Provider string
	Status   int
	Body     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s responded %d: %s", e.Provider, e.Status, e.Body)
}

type LinkRequest struct {
	Reference     string
	Amount        decimal.Decimal
	CustomerEmail string
	CustomerName  string
	Description   string
}

type PaymentLink struct {
	URL       string `json:"url"`
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// Gateway creates hosted checkout pages.
type Gateway interface {
	Provider() string
	CreatePaymentLink(ctx context.Context, req LinkRequest) (*PaymentLink, error)
}

// IsConfigError reports errors caused by missing gateway settings.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrGatewayNotConfigured) ||
		errors.Is(err, ErrMissingPublicKey) ||
		errors.Is(err, ErrMissingPrivateKey)
}
