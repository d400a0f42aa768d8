package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/finance/payments/dto"
	model "academia_backend/internals/features/finance/payments/model"
	helper "academia_backend/internals/helpers"
)

type PaymentAdminController struct {
	DB *gorm.DB
}

func NewPaymentAdminController(db *gorm.DB) *PaymentAdminController {
	return &PaymentAdminController{DB: db}
}

/* =======================================================================
   List
   Query params:
     - status: pending,completed (csv)
     - q: concept or reference (case-insensitive)
     - page (default 1), per_page|limit (default 20, max 200)
======================================================================= */

// GET /api/a/payments
func (h *PaymentAdminController) List(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext()).Model(&model.Payment{})

	if statuses := splitCSV(c.Query("status")); len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(concept) LIKE ? OR LOWER(wompi_reference) LIKE ?", like, like)
	}

	pg := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "count failed")
	}

	var rows []model.Payment
	if err := db.Order("created_at DESC").Limit(pg.PerPage).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "query failed")
	}

	out := make([]*dto.PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromPaymentModel(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, pg.Page, pg.PerPage, len(out)))
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
