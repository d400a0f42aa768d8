package controller

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	gatewayService "academia_backend/internals/features/finance/gateway/service"
	paymentModel "academia_backend/internals/features/finance/payments/model"
	helper "academia_backend/internals/helpers"
)

const wompiChecksumHeader = "X-Event-Checksum"

/* =======================================================================
   Controller
======================================================================= */

type WebhookController struct {
	DB       *gorm.DB
	Wompi    *gatewayService.WompiClient
	Midtrans *gatewayService.MidtransClient
	Now      func() time.Time
}

func NewWebhookController(db *gorm.DB, wompi *gatewayService.WompiClient, midtrans *gatewayService.MidtransClient) *WebhookController {
	return &WebhookController{DB: db, Wompi: wompi, Midtrans: midtrans, Now: time.Now}
}

/* =======================================================================
   Wompi
======================================================================= */

// POST /api/webhooks/wompi
func (h *WebhookController) WompiWebhook(c *fiber.Ctx) error {
	ctx := c.UserContext()
	db := h.DB.WithContext(ctx)
	raw := append([]byte(nil), c.Body()...)

	ev, signed, err := gatewayService.DecodeWompiEvent(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	signature := gatewayService.WompiSignature(c.Get(wompiChecksumHeader), ev)
	tx := ev.Data.Transaction

	logged, err := gatewayService.RecordEvent(db, gatewayService.EventRecord{
		Provider:    paymentModel.GatewayProviderWompi,
		EventType:   ev.Event,
		ExternalRef: tx.ID,
		Payload:     raw,
		Signature:   signature,
	})
	if err != nil {
		log.Printf("[ERROR] wompi webhook log failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not record event")
	}

	if !h.Wompi.VerifyWebhookSignature(ctx, signed, signature) {
		log.Printf("[WARN] wompi webhook rejected: bad signature event=%s tx=%s", ev.Event, tx.ID)
		_ = gatewayService.FinishEvent(db, logged, nil, paymentModel.GatewayEventStatusRejected, "invalid signature")
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	if ev.Event != "transaction.updated" {
		_ = gatewayService.FinishEvent(db, logged, nil, paymentModel.GatewayEventStatusProcessed, "")
		return helper.JsonOK(c, "ignored", fiber.Map{"event": ev.Event})
	}

	return h.settle(c, logged, tx.Reference, tx.PaymentLinkID, tx.Status, gatewayService.MapWompiStatus)
}

/* =======================================================================
   Midtrans
======================================================================= */

// POST /api/webhooks/midtrans
func (h *WebhookController) MidtransWebhook(c *fiber.Ctx) error {
	if h.Midtrans == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "midtrans is not configured")
	}
	ctx := c.UserContext()
	db := h.DB.WithContext(ctx)

	var notif gatewayService.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	payload, _ := sonic.Marshal(notif)
	logged, err := gatewayService.RecordEvent(db, gatewayService.EventRecord{
		Provider:    paymentModel.GatewayProviderMidtrans,
		EventType:   notif.TransactionStatus,
		ExternalRef: notif.TransactionID,
		Payload:     payload,
		Signature:   notif.SignatureKey,
	})
	if err != nil {
		log.Printf("[ERROR] midtrans webhook log failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not record event")
	}

	if !h.Midtrans.VerifyNotification(notif) {
		_ = gatewayService.FinishEvent(db, logged, nil, paymentModel.GatewayEventStatusRejected, "invalid signature")
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	return h.settle(c, logged, notif.OrderID, "", notif.TransactionStatus, func(string) (paymentModel.PaymentStatus, bool) {
		return gatewayService.MapMidtransStatus(notif)
	})
}

/* =======================================================================
   Shared
======================================================================= */

// settle applies a verified notification to its payment. Unknown payments are
// acknowledged with 200 so the provider stops retrying.
func (h *WebhookController) settle(
	c *fiber.Ctx,
	logged *paymentModel.PaymentGatewayEvent,
	reference, linkID, providerStatus string,
	mapStatus func(string) (paymentModel.PaymentStatus, bool),
) error {
	db := h.DB.WithContext(c.UserContext())

	p, err := gatewayService.FindPayment(db, reference, linkID)
	if err != nil {
		if !errors.Is(err, gatewayService.ErrPaymentNotFound) {
			_ = gatewayService.FinishEvent(db, logged, nil, paymentModel.GatewayEventStatusFailed, err.Error())
			return helper.JsonError(c, fiber.StatusInternalServerError, "load payment failed")
		}
		_ = gatewayService.FinishEvent(db, logged, nil, paymentModel.GatewayEventStatusFailed, "payment not found for reference="+reference)
		return helper.JsonOK(c, "ignored", fiber.Map{"reason": "payment not found"})
	}

	status, ok := mapStatus(providerStatus)
	if !ok {
		_ = gatewayService.FinishEvent(db, logged, p, paymentModel.GatewayEventStatusProcessed, "")
		return helper.JsonOK(c, "ignored", fiber.Map{"payment_status": p.Status})
	}

	var changed bool
	err = db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		changed, txErr = gatewayService.ApplyPaymentStatus(tx, p, status, h.now())
		return txErr
	})
	if err != nil {
		log.Printf("[ERROR] webhook update failed ref=%s: %v", p.WompiReference, err)
		_ = gatewayService.FinishEvent(db, logged, p, paymentModel.GatewayEventStatusFailed, err.Error())
		return helper.JsonError(c, fiber.StatusInternalServerError, "update payment failed")
	}

	_ = gatewayService.FinishEvent(db, logged, p, paymentModel.GatewayEventStatusProcessed, "")
	return helper.JsonOK(c, "ok", fiber.Map{
		"payment_id":      p.ID,
		"payment_status":  p.Status,
		"provider_status": providerStatus,
		"changed":         changed,
	})
}

func (h *WebhookController) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}
