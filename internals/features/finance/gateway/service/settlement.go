package service

import (
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	paymentModel "academia_backend/internals/features/finance/payments/model"
	enrollmentService "academia_backend/internals/features/school/enrollments/service"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not pending")
)

/* ==========================
   Lookup
========================== */

// FindPayment matches a gateway notification by our reference first, then by the hosted link id.
func FindPayment(db *gorm.DB, reference, linkID string) (*paymentModel.Payment, error) {
	var p paymentModel.Payment
	if ref := strings.TrimSpace(reference); ref != "" {
		err := db.Where("wompi_reference = ?", ref).Take(&p).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "load payment by reference")
		}
	}
	if id := strings.TrimSpace(linkID); id != "" {
		err := db.Where("gateway_link_id = ?", id).Take(&p).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "load payment by link id")
		}
	}
	return nil, ErrPaymentNotFound
}

/* ==========================
   Status changes
========================== */

// ApplyPaymentStatus moves a pending payment to status. Completing a payment
// settles it in full and activates its enrollment; both happen on tx.
// The update is guarded on the stored status, so a stale p cannot overwrite a
// payment another delivery already settled. p is reloaded from tx afterwards.
// Settled or closed payments are left untouched and report changed=false.
func ApplyPaymentStatus(tx *gorm.DB, p *paymentModel.Payment, status paymentModel.PaymentStatus, at time.Time) (changed bool, err error) {
	if !p.IsOpen() || status == paymentModel.PaymentStatusPending {
		return false, nil
	}

	updates := map[string]any{"status": status}
	switch status {
	case paymentModel.PaymentStatusCompleted:
		updates["paid_amount"] = gorm.Expr("original_amount")
		updates["remaining_amount"] = decimal.Zero
		updates["paid_at"] = at
	case paymentModel.PaymentStatusCancelled, paymentModel.PaymentStatusFailed:
	default:
		return false, errors.Errorf("unsupported payment status %q", status)
	}

	res := tx.Model(&paymentModel.Payment{}).
		Where("id = ? AND status = ?", p.ID, paymentModel.PaymentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "update payment status")
	}
	if err := tx.Where("id = ?", p.ID).Take(p).Error; err != nil {
		return false, errors.Wrap(err, "reload payment")
	}
	if res.RowsAffected == 0 {
		log.Printf("[INFO] payment %s already %s, %s ignored", p.WompiReference, p.Status, status)
		return false, nil
	}

	if status == paymentModel.PaymentStatusCompleted {
		if err := enrollmentService.ActivateEnrollment(tx, p.EnrollmentID); err != nil {
			return false, errors.Wrap(err, "activate enrollment")
		}
	}

	log.Printf("[INFO] payment %s → %s", p.WompiReference, status)
	return true, nil
}

/* ==========================
   Event log
========================== */

type EventRecord struct {
	Provider    paymentModel.PaymentGatewayProvider
	EventType   string
	ExternalRef string
	Payload     []byte
	Signature   string
}

// RecordEvent stores an incoming notification with status received.
func RecordEvent(db *gorm.DB, rec EventRecord) (*paymentModel.PaymentGatewayEvent, error) {
	ev := &paymentModel.PaymentGatewayEvent{
		Provider:    rec.Provider,
		EventType:   optString(rec.EventType),
		ExternalRef: optString(rec.ExternalRef),
		Payload:     datatypes.JSON(rec.Payload),
		Signature:   optString(rec.Signature),
		Status:      paymentModel.GatewayEventStatusReceived,
	}
	if len(ev.Payload) == 0 {
		ev.Payload = datatypes.JSON("{}")
	}
	if err := db.Create(ev).Error; err != nil {
		return nil, errors.Wrap(err, "record gateway event")
	}
	return ev, nil
}

// FinishEvent closes an event with its outcome; errMsg is stored when not empty.
func FinishEvent(db *gorm.DB, ev *paymentModel.PaymentGatewayEvent, p *paymentModel.Payment, status paymentModel.GatewayEventStatus, errMsg string) error {
	now := time.Now().UTC()
	ev.Status = status
	ev.ProcessedAt = &now
	ev.Error = optString(errMsg)
	if p != nil {
		pid := p.ID
		ev.PaymentID = &pid
	}
	return db.Model(&paymentModel.PaymentGatewayEvent{}).
		Where("id = ?", ev.ID).
		Updates(map[string]any{
			"status":       ev.Status,
			"processed_at": ev.ProcessedAt,
			"error":        ev.Error,
			"payment_id":   ev.PaymentID,
		}).Error
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
