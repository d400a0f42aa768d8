package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingsModel "academia_backend/internals/features/finance/settings/model"
	settingsService "academia_backend/internals/features/finance/settings/service"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

// fakeWompi answers POST /payment_links with status and body and records what it got.
func fakeWompi(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		raw, _ := io.ReadAll(r.Body)
		got.Path = r.URL.Path
		got.Authorization = r.Header.Get("Authorization")
		_ = sonic.Unmarshal(raw, &got.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newTestClient(srvURL string, cfg *settingsModel.WompiSetting) *WompiClient {
	c := NewWompiClient(settingsService.StaticProvider{Wompi: cfg}, "https://academia.test/gracias")
	c.SandboxURL = srvURL
	c.ProductionURL = srvURL
	c.CheckoutURL = "https://checkout.test/l/"
	return c
}

func sandboxSetting(integrity string) *settingsModel.WompiSetting {
	return &settingsModel.WompiSetting{
		PublicKey:       "pub_test_key",
		PrivateKey:      "prv_test_key",
		IntegritySecret: integrity,
		IsActive:        true,
	}
}

func linkRequest() LinkRequest {
	return LinkRequest{
		Reference:   "MAT-ref-1",
		Amount:      decimal.RequireFromString("85000.999"),
		Description: "Matrícula Piano - Ana Gómez",
	}
}

func TestWompiClient_CreatePaymentLink(t *testing.T) {
	srv, got := fakeWompi(t, http.StatusCreated, `{"data":{"id":"lnk_123"}}`)
	c := newTestClient(srv.URL, sandboxSetting("integrity_secret"))

	link, err := c.CreatePaymentLink(context.Background(), linkRequest())
	require.NoError(t, err)

	assert.Equal(t, "lnk_123", link.ID)
	assert.Equal(t, "https://checkout.test/l/lnk_123", link.URL)
	assert.Equal(t, "MAT-ref-1", link.Reference)

	assert.Equal(t, "/payment_links", got.Path)
	assert.Equal(t, "Bearer prv_test_key", got.Authorization)
	assert.EqualValues(t, 8500099, got.Body["amount_in_cents"])
	assert.Equal(t, "COP", got.Body["currency"])
	assert.Equal(t, true, got.Body["single_use"])
	assert.Equal(t, false, got.Body["collect_shipping"])
	assert.Equal(t, "https://academia.test/gracias", got.Body["redirect_url"])
	assert.Equal(t, IntegritySignature("MAT-ref-1", 8500099, "COP", "integrity_secret"), got.Body["integrity"])
}

func TestWompiClient_CreatePaymentLink_NoIntegritySecret(t *testing.T) {
	srv, got := fakeWompi(t, http.StatusOK, `{"data":{"id":"lnk_1"}}`)
	c := newTestClient(srv.URL, sandboxSetting(""))

	_, err := c.CreatePaymentLink(context.Background(), linkRequest())
	require.NoError(t, err)

	_, present := got.Body["integrity"]
	assert.False(t, present)
}

func TestWompiClient_CreatePaymentLink_Errors(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		srv, _ := fakeWompi(t, http.StatusUnprocessableEntity, `{"error":{"type":"INPUT_VALIDATION_ERROR"}}`)
		c := newTestClient(srv.URL, sandboxSetting(""))

		_, err := c.CreatePaymentLink(context.Background(), linkRequest())
		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, http.StatusUnprocessableEntity, gwErr.Status)
		assert.Contains(t, gwErr.Body, "INPUT_VALIDATION_ERROR")
	})

	t.Run("missing id", func(t *testing.T) {
		srv, _ := fakeWompi(t, http.StatusOK, `{"data":{}}`)
		c := newTestClient(srv.URL, sandboxSetting(""))

		_, err := c.CreatePaymentLink(context.Background(), linkRequest())
		assert.ErrorIs(t, err, ErrMissingLinkID)
	})

	t.Run("configuration", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  *settingsModel.WompiSetting
			want error
		}{
			{"no setting", nil, ErrGatewayNotConfigured},
			{"no public key", &settingsModel.WompiSetting{PrivateKey: "prv", IsActive: true}, ErrMissingPublicKey},
			{"no private key", &settingsModel.WompiSetting{PublicKey: "pub_test_x", IsActive: true}, ErrMissingPrivateKey},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := newTestClient("http://127.0.0.1:0", tt.cfg)
				_, err := c.CreatePaymentLink(context.Background(), linkRequest())
				assert.ErrorIs(t, err, tt.want)
				assert.True(t, IsConfigError(err))
			})
		}
	})
}

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1500", 150000},
		{"85000.5", 8500050},
		{"10.999", 1099},
		{"0.009", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInCents(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestWompiClient_VerifyWebhookSignature(t *testing.T) {
	event := map[string]any{
		"event": "transaction.updated",
		"data":  map[string]any{"transaction": map[string]any{"id": "tx-1", "status": "APPROVED"}},
	}
	sig, err := EventChecksum(event, "integrity_secret")
	require.NoError(t, err)

	c := NewWompiClient(settingsService.StaticProvider{Wompi: sandboxSetting("integrity_secret")}, "")
	ctx := context.Background()

	assert.True(t, c.VerifyWebhookSignature(ctx, event, sig))
	assert.True(t, c.VerifyWebhookSignature(ctx, event, " "+sig+" "))
	assert.False(t, c.VerifyWebhookSignature(ctx, event, ""))
	assert.False(t, c.VerifyWebhookSignature(ctx, event, strings.ToUpper(sig)), "digest comparison is exact")

	tampered := map[string]any{
		"event": "transaction.updated",
		"data":  map[string]any{"transaction": map[string]any{"id": "tx-1", "status": "DECLINED"}},
	}
	assert.False(t, c.VerifyWebhookSignature(ctx, tampered, sig))

	unconfigured := NewWompiClient(settingsService.StaticProvider{Wompi: sandboxSetting("")}, "")
	assert.False(t, unconfigured.VerifyWebhookSignature(ctx, event, sig))
}

func TestWompiClient_APIBase(t *testing.T) {
	c := NewWompiClient(settingsService.StaticProvider{}, "")

	assert.Equal(t, WompiSandboxURL, c.apiBase(&settingsModel.WompiSetting{PublicKey: "pub_test_1"}))
	assert.Equal(t, WompiProductionURL, c.apiBase(&settingsModel.WompiSetting{PublicKey: "pub_prod_1"}))
	assert.Equal(t, "https://custom.example/v1", c.apiBase(&settingsModel.WompiSetting{PublicKey: "pub_prod_1", APIURL: "https://custom.example/v1/"}))
}
