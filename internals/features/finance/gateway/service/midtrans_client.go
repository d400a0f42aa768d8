package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"

	paymentModel "academia_backend/internals/features/finance/payments/model"
)

const ProviderMidtrans = "midtrans"

type MidtransClient struct {
	ServerKey string
	snap      snap.Client
}

func NewMidtransClient(serverKey string, useProd bool) *MidtransClient {
	m := &MidtransClient{ServerKey: strings.TrimSpace(serverKey)}
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	m.snap.New(m.ServerKey, env)
	return m
}

func (m *MidtransClient) Provider() string { return ProviderMidtrans }

// CreatePaymentLink opens a Snap transaction; order id is the payment reference.
func (m *MidtransClient) CreatePaymentLink(_ context.Context, req LinkRequest) (*PaymentLink, error) {
	if m.ServerKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	sr := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.Reference,
			GrossAmt: req.Amount.IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
	}

	resp, mErr := m.snap.CreateTransaction(sr)
	// CreateTransaction returns a typed *midtrans.Error; compare before converting.
	if mErr != nil {
		log.Printf("[ERROR] midtrans snap failed ref=%s: %s", req.Reference, mErr.Message)
		return nil, &GatewayError{Provider: ProviderMidtrans, Status: mErr.StatusCode, Body: mErr.Message}
	}
	if resp == nil || strings.TrimSpace(resp.Token) == "" {
		return nil, errors.Wrap(ErrMissingLinkID, "midtrans snap token")
	}

	return &PaymentLink{URL: resp.RedirectURL, ID: resp.Token, Reference: req.Reference}, nil
}

// MidtransNotification is the subset of the HTTP notification body we rely on.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
}

// VerifyNotification checks sha512(order_id + status_code + gross_amount + server_key).
func (m *MidtransClient) VerifyNotification(n MidtransNotification) bool {
	if m.ServerKey == "" || n.SignatureKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + m.ServerKey))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(strings.TrimSpace(n.SignatureKey))) == 1
}

// MapMidtransStatus translates transaction_status/fraud_status into a payment status.
// ok=false means the notification does not change the payment.
func MapMidtransStatus(n MidtransNotification) (status paymentModel.PaymentStatus, ok bool) {
	switch strings.ToLower(n.TransactionStatus) {
	case "capture":
		if strings.EqualFold(n.FraudStatus, "challenge") {
			return paymentModel.PaymentStatusPending, true
		}
		return paymentModel.PaymentStatusCompleted, true
	case "settlement":
		return paymentModel.PaymentStatusCompleted, true
	case "pending":
		return paymentModel.PaymentStatusPending, true
	case "deny", "failure":
		return paymentModel.PaymentStatusFailed, true
	case "cancel", "expire":
		return paymentModel.PaymentStatusCancelled, true
	default:
		return "", false
	}
}

// MapWompiStatus translates a Wompi transaction status.
func MapWompiStatus(status string) (paymentModel.PaymentStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "APPROVED":
		return paymentModel.PaymentStatusCompleted, true
	case "DECLINED", "VOIDED":
		return paymentModel.PaymentStatusCancelled, true
	case "ERROR":
		return paymentModel.PaymentStatusFailed, true
	default:
		return "", false
	}
}
