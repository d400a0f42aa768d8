package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	model "academia_backend/internals/features/finance/settings/model"
)

type UpsertPaymentSettingRequest struct {
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
}

// Empty secrets keep the value of the currently active row.
type UpsertWompiSettingRequest struct {
	Environment     string `json:"environment"      validate:"omitempty,oneof=test production"`
	PublicKey       string `json:"public_key"       validate:"required,max=255"`
	PrivateKey      string `json:"private_key"      validate:"omitempty,max=255"`
	EventsSecret    string `json:"events_secret"    validate:"omitempty,max=255"`
	IntegritySecret string `json:"integrity_secret" validate:"omitempty,max=255"`
	APIURL          string `json:"api_url"          validate:"omitempty,url,max=255"`
}

func (r UpsertWompiSettingRequest) ToModel(current *model.WompiSetting) model.WompiSetting {
	out := model.WompiSetting{
		Environment:     model.WompiEnvironment(strings.TrimSpace(r.Environment)),
		PublicKey:       strings.TrimSpace(r.PublicKey),
		PrivateKey:      strings.TrimSpace(r.PrivateKey),
		EventsSecret:    strings.TrimSpace(r.EventsSecret),
		IntegritySecret: strings.TrimSpace(r.IntegritySecret),
		APIURL:          strings.TrimSpace(r.APIURL),
	}
	if current != nil {
		out.PrivateKey = keep(out.PrivateKey, current.PrivateKey)
		out.EventsSecret = keep(out.EventsSecret, current.EventsSecret)
		out.IntegritySecret = keep(out.IntegritySecret, current.IntegritySecret)
	}
	return out
}

type WompiSettingResponse struct {
	Environment     model.WompiEnvironment `json:"environment"`
	PublicKey       string                 `json:"public_key"`
	PrivateKey      string                 `json:"private_key"`
	EventsSecret    string                 `json:"events_secret"`
	IntegritySecret string                 `json:"integrity_secret"`
	APIURL          string                 `json:"api_url"`
	Sandbox         bool                   `json:"sandbox"`
}

func FromWompiModel(m *model.WompiSetting) *WompiSettingResponse {
	return &WompiSettingResponse{
		Environment:     m.Environment,
		PublicKey:       m.PublicKey,
		PrivateKey:      Mask(m.PrivateKey),
		EventsSecret:    Mask(m.EventsSecret),
		IntegritySecret: Mask(m.IntegritySecret),
		APIURL:          m.APIURL,
		Sandbox:         m.IsSandbox(),
	}
}

// Mask keeps the last four characters.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}

func keep(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
