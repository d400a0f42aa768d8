package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	settingsModel "academia_backend/internals/features/finance/settings/model"
	settingsService "academia_backend/internals/features/finance/settings/service"
)

const (
	WompiSandboxURL    = "https://sandbox.wompi.co/v1"
	WompiProductionURL = "https://production.wompi.co/v1"
	WompiCheckoutURL   = "https://checkout.wompi.co/l/"
	WompiCurrency      = "COP"

	ProviderWompi = "wompi"

	// RequestTimeout bounds every outbound gateway call.
	RequestTimeout = 15 * time.Second
)

type WompiClient struct {
	Settings    settingsService.Provider
	RedirectURL string

	// Overridable for tests.
	SandboxURL    string
	ProductionURL string
	CheckoutURL   string
	Timeout       time.Duration
}

func NewWompiClient(settings settingsService.Provider, redirectURL string) *WompiClient {
	return &WompiClient{
		Settings:      settings,
		RedirectURL:   redirectURL,
		SandboxURL:    WompiSandboxURL,
		ProductionURL: WompiProductionURL,
		CheckoutURL:   WompiCheckoutURL,
		Timeout:       RequestTimeout,
	}
}

func (w *WompiClient) Provider() string { return ProviderWompi }

type wompiLinkPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	SingleUse       bool   `json:"single_use"`
	CollectShipping bool   `json:"collect_shipping"`
	Currency        string `json:"currency"`
	AmountInCents   int64  `json:"amount_in_cents"`
	RedirectURL     string `json:"redirect_url,omitempty"`
	Integrity       string `json:"integrity,omitempty"`
}

type wompiLinkResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

/* ==========================
   Payment links
========================== */

func (w *WompiClient) CreatePaymentLink(ctx context.Context, req LinkRequest) (*PaymentLink, error) {
	cfg, err := w.Settings.ActiveWompiSetting(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load wompi setting")
	}
	if cfg == nil {
		return nil, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(cfg.PublicKey) == "" {
		return nil, ErrMissingPublicKey
	}
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return nil, ErrMissingPrivateKey
	}

	cents := AmountInCents(req.Amount)
	payload := wompiLinkPayload{
		Name:            req.Description,
		Description:     req.Description,
		SingleUse:       true,
		CollectShipping: false,
		Currency:        WompiCurrency,
		AmountInCents:   cents,
		RedirectURL:     w.RedirectURL,
	}
	if secret := strings.TrimSpace(cfg.IntegritySecret); secret != "" {
		payload.Integrity = IntegritySignature(req.Reference, cents, WompiCurrency, secret)
	}

	a := fiber.Post(w.apiBase(cfg) + "/payment_links")
	a.Set(fiber.HeaderAuthorization, "Bearer "+cfg.PrivateKey)
	a.JSONEncoder(sonic.Marshal).JSON(payload)
	a.Timeout(w.timeout(ctx))
	if err := a.Parse(); err != nil {
		return nil, errors.Wrap(err, "wompi request")
	}

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "wompi request")
	}
	if status < 200 || status >= 300 {
		log.Printf("[ERROR] wompi payment link failed ref=%s status=%d", req.Reference, status)
		return nil, &GatewayError{Provider: ProviderWompi, Status: status, Body: string(body)}
	}

	var out wompiLinkResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decode wompi response")
	}
	if strings.TrimSpace(out.Data.ID) == "" {
		return nil, ErrMissingLinkID
	}

	log.Printf("[INFO] 💳 wompi link created ref=%s id=%s", req.Reference, out.Data.ID)
	return &PaymentLink{
		URL:       w.checkoutBase() + out.Data.ID,
		ID:        out.Data.ID,
		Reference: req.Reference,
	}, nil
}

/* ==========================
   Webhooks
========================== */

// VerifyWebhookSignature checks sha256(json(event) + integrity secret) against
// signature. Missing configuration or any failure yields false.
func (w *WompiClient) VerifyWebhookSignature(ctx context.Context, event any, signature string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}
	cfg, err := w.Settings.ActiveWompiSetting(ctx)
	if err != nil || cfg == nil || strings.TrimSpace(cfg.IntegritySecret) == "" {
		return false
	}
	want, err := EventChecksum(event, cfg.IntegritySecret)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(signature)) == 1
}

// EventChecksum serializes the event with sorted map keys and hashes it with the secret.
func EventChecksum(event any, secret string) (string, error) {
	raw, err := sonic.ConfigStd.Marshal(event)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append(raw, secret...))
	return hex.EncodeToString(sum[:]), nil
}

/* ==========================
   Helpers
========================== */

// AmountInCents truncates toward zero.
func AmountInCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Truncate(0).IntPart()
}

func IntegritySignature(reference string, cents int64, currency, secret string) string {
	sum := sha256.Sum256([]byte(reference + strconv.FormatInt(cents, 10) + currency + secret))
	return hex.EncodeToString(sum[:])
}

func (w *WompiClient) apiBase(cfg *settingsModel.WompiSetting) string {
	if cfg.IsSandbox() {
		return strings.TrimRight(firstNonEmpty(w.SandboxURL, WompiSandboxURL), "/")
	}
	return strings.TrimRight(firstNonEmpty(cfg.APIURL, w.ProductionURL, WompiProductionURL), "/")
}

func (w *WompiClient) checkoutBase() string {
	return firstNonEmpty(w.CheckoutURL, WompiCheckoutURL)
}

// timeout is the client timeout, shortened to the context deadline when sooner.
func (w *WompiClient) timeout(ctx context.Context) time.Duration {
	t := w.Timeout
	if t <= 0 {
		t = RequestTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < t {
			t = left
		}
	}
	return t
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
