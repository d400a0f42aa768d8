package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gatewayService "academia_backend/internals/features/finance/gateway/service"
	paymentModel "academia_backend/internals/features/finance/payments/model"
)

type stubGateway struct {
	err error
}

func (s stubGateway) Provider() string { return gatewayService.ProviderWompi }

func (s stubGateway) CreatePaymentLink(_ context.Context, req gatewayService.LinkRequest) (*gatewayService.PaymentLink, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &gatewayService.PaymentLink{URL: "https://pay.test/l/1", ID: "1", Reference: req.Reference}, nil
}

func TestCreateCheckout(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		gwErr  error
		closed bool
		want   int
	}{
		{name: "ok", ref: "MAT-co", want: fiber.StatusOK},
		{name: "unknown reference", ref: "MAT-missing", want: fiber.StatusNotFound},
		{name: "already paid", ref: "MAT-co", closed: true, want: fiber.StatusConflict},
		{name: "not configured", ref: "MAT-co", gwErr: gatewayService.ErrGatewayNotConfigured, want: fiber.StatusServiceUnavailable},
		{name: "provider refused", ref: "MAT-co", gwErr: &gatewayService.GatewayError{Provider: "wompi", Status: 422}, want: fiber.StatusBadGateway},
		{name: "no link id", ref: "MAT-co", gwErr: gatewayService.ErrMissingLinkID, want: fiber.StatusBadGateway},
		{name: "unexpected", ref: "MAT-co", gwErr: errors.New("boom"), want: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, db := newWebhookApp(t)
			p, _ := seedPayment(t, db, "MAT-co")
			if tt.closed {
				require.NoError(t, db.Model(p).Update("status", paymentModel.PaymentStatusCompleted).Error)
			}

			h := NewCheckoutController(gatewayService.NewCheckoutService(db, stubGateway{err: tt.gwErr}))
			app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
			app.Post("/payments/:reference/checkout", h.CreateCheckout)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/payments/"+tt.ref+"/checkout", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
