package details

import (
	"github.com/gofiber/fiber/v2"

	gatewayController "academia_backend/internals/features/finance/gateway/controller"
	paymentController "academia_backend/internals/features/finance/payments/controller"
	settingsController "academia_backend/internals/features/finance/settings/controller"
	middlewares "academia_backend/internals/middlewares"
)

// FinancePublicRoutes mounts under /api/public.
func FinancePublicRoutes(r fiber.Router, d *Deps) {
	checkout := gatewayController.NewCheckoutController(d.Checkout)
	r.Post("/payments/:reference/checkout", middlewares.CheckoutRateLimiter(), checkout.CreateCheckout)
}

// FinanceWebhookRoutes mounts under /api/webhooks; providers sign their own requests.
func FinanceWebhookRoutes(r fiber.Router, d *Deps) {
	hooks := gatewayController.NewWebhookController(d.DB, d.Wompi, d.Midtrans)
	r.Post("/wompi", hooks.WompiWebhook)
	r.Post("/midtrans", hooks.MidtransWebhook)
}

// FinanceAdminRoutes mounts under /api/a.
func FinanceAdminRoutes(r fiber.Router, d *Deps) {
	payments := paymentController.NewPaymentAdminController(d.DB)
	r.Get("/payments", payments.List)

	events := paymentController.NewPaymentGatewayEventController(d.DB)
	r.Get("/payment-gateway-events", events.ListEvents)

	settings := settingsController.NewSettingsController(d.DB)
	st := r.Group("/settings")
	st.Get("/payment", settings.GetPayment)
	st.Put("/payment", settings.PutPayment)
	st.Get("/wompi", settings.GetWompi)
	st.Put("/wompi", settings.PutWompi)
}
