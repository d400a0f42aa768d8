package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	gatewayService "academia_backend/internals/features/finance/gateway/service"
	helper "academia_backend/internals/helpers"
)

type CheckoutController struct {
	Checkout *gatewayService.CheckoutService
}

func NewCheckoutController(svc *gatewayService.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: svc}
}

// POST /api/public/payments/:reference/checkout
func (h *CheckoutController) CreateCheckout(c *fiber.Ctx) error {
	ref := strings.TrimSpace(c.Params("reference"))
	if ref == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "reference is required")
	}

	link, p, err := h.Checkout.Checkout(c.UserContext(), ref)
	if err != nil {
		return checkoutError(c, ref, err)
	}

	return helper.JsonOK(c, "checkout ready", fiber.Map{
		"checkout_url": link.URL,
		"link_id":      link.ID,
		"reference":    link.Reference,
		"amount":       p.Amount,
		"provider":     p.GatewayProvider,
	})
}

func checkoutError(c *fiber.Ctx, ref string, err error) error {
	var gwErr *gatewayService.GatewayError
	switch {
	case errors.Is(err, gatewayService.ErrPaymentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
	case errors.Is(err, gatewayService.ErrPaymentNotPending):
		return helper.JsonError(c, fiber.StatusConflict, "payment is not pending")
	case gatewayService.IsConfigError(err):
		log.Printf("[ERROR] checkout ref=%s: %v", ref, err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "payment gateway is not available")
	case errors.As(err, &gwErr), errors.Is(err, gatewayService.ErrMissingLinkID):
		log.Printf("[ERROR] checkout ref=%s: %v", ref, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway error")
	default:
		log.Printf("[ERROR] checkout ref=%s: %v", ref, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not create checkout")
	}
}
