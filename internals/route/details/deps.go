package details

import (
	"log"

	"gorm.io/gorm"

	"academia_backend/internals/configs"
	gatewayService "academia_backend/internals/features/finance/gateway/service"
	paymentService "academia_backend/internals/features/finance/payments/service"
	settingsService "academia_backend/internals/features/finance/settings/service"
	enrollmentService "academia_backend/internals/features/school/enrollments/service"
)

// Deps holds the services shared by the route groups.
type Deps struct {
	DB          *gorm.DB
	Settings    settingsService.Provider
	Enrollments *enrollmentService.EnrollmentService
	Wompi       *gatewayService.WompiClient
	Midtrans    *gatewayService.MidtransClient
	Checkout    *gatewayService.CheckoutService
}

func NewDeps(db *gorm.DB) *Deps {
	settings := settingsService.NewGormProvider(db)
	payments := paymentService.NewPaymentWriter(paymentService.NewAmountResolver(settings))

	d := &Deps{
		DB:          db,
		Settings:    settings,
		Enrollments: enrollmentService.NewEnrollmentService(db, payments),
		Wompi:       gatewayService.NewWompiClient(settings, configs.WompiRedirectURL),
		Midtrans:    gatewayService.NewMidtransClient(configs.MidtransServerKey, configs.MidtransUseProd),
	}

	var gw gatewayService.Gateway = d.Wompi
	if configs.PaymentGateway == gatewayService.ProviderMidtrans {
		gw = d.Midtrans
	}
	log.Printf("[INFO] checkout provider: %s", gw.Provider())
	d.Checkout = gatewayService.NewCheckoutService(db, gw)
	return d
}
