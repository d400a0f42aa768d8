package service

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// Numbers stay json.Number so re-serializing an event reproduces its digits.
var eventDecoder = sonic.Config{UseNumber: true}.Froze()

type WompiTransaction struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	PaymentLinkID string `json:"payment_link_id"`
	AmountInCents int64  `json:"amount_in_cents"`
}

type WompiEvent struct {
	Event string `json:"event"`
	Data  struct {
		Transaction WompiTransaction `json:"transaction"`
	} `json:"data"`
	Signature struct {
		Checksum string `json:"checksum"`
	} `json:"signature"`
}

// DecodeWompiEvent parses a webhook body. It returns the typed event and the
// event as a generic map without its signature block, which is what gets signed.
func DecodeWompiEvent(raw []byte) (*WompiEvent, map[string]any, error) {
	var ev WompiEvent
	if err := sonic.Unmarshal(raw, &ev); err != nil {
		return nil, nil, errors.Wrap(err, "decode wompi event")
	}
	var generic map[string]any
	if err := eventDecoder.Unmarshal(raw, &generic); err != nil {
		return nil, nil, errors.Wrap(err, "decode wompi event")
	}
	delete(generic, "signature")
	return &ev, generic, nil
}

// WompiSignature prefers the checksum header and falls back to the body.
func WompiSignature(header string, ev *WompiEvent) string {
	if s := strings.TrimSpace(header); s != "" {
		return s
	}
	if ev == nil {
		return ""
	}
	return strings.TrimSpace(ev.Signature.Checksum)
}
