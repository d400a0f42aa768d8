package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/finance/payments/dto"
	model "academia_backend/internals/features/finance/payments/model"
	helper "academia_backend/internals/helpers"
)

type PaymentGatewayEventController struct {
	DB *gorm.DB
}

func NewPaymentGatewayEventController(db *gorm.DB) *PaymentGatewayEventController {
	return &PaymentGatewayEventController{DB: db}
}

/* =======================================================================
   List (filter + pagination)
   Query params:
     - provider: wompi|midtrans
     - status: received|processed|rejected|failed
     - payment_id: uuid
     - start, end: RFC3339 (received_at)
     - page (default 1), per_page|limit (default 20, max 200)
======================================================================= */

// GET /api/a/payment-gateway-events
func (h *PaymentGatewayEventController) ListEvents(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext()).Model(&model.PaymentGatewayEvent{})

	if p := strings.TrimSpace(c.Query("provider")); p != "" {
		db = db.Where("provider = ?", strings.ToLower(p))
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("status = ?", strings.ToLower(s))
	}
	if pid := strings.TrimSpace(c.Query("payment_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment_id")
		}
		db = db.Where("payment_id = ?", id)
	}
	if start := strings.TrimSpace(c.Query("start")); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start (use RFC3339)")
		}
		db = db.Where("received_at >= ?", t)
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end (use RFC3339)")
		}
		db = db.Where("received_at < ?", t)
	}

	pg := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "count failed")
	}

	var rows []model.PaymentGatewayEvent
	if err := db.Order("received_at DESC").Limit(pg.PerPage).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "query failed")
	}

	out := make([]*dto.PaymentGatewayEventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromEventModel(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, pg.Page, pg.PerPage, len(out)))
}
