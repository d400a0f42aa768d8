package service

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	settingsService "academia_backend/internals/features/finance/settings/service"
)

var (
	// DefaultTuitionAmount applies when no tuition setting is active.
	DefaultTuitionAmount = decimal.NewFromInt(100000)
	// GatewayMinimumAmount is the smallest amount the gateway will charge.
	GatewayMinimumAmount = decimal.NewFromInt(1500)
)

type Resolution struct {
	Amount     decimal.Decimal // effective amount to charge
	Configured decimal.Decimal // amount read from settings (or the default)
	FromConfig bool            // an active setting was found
	Clamped    bool            // Configured was raised to the gateway minimum
}

type AmountResolver struct {
	Settings settingsService.Provider
}

func NewAmountResolver(p settingsService.Provider) *AmountResolver {
	return &AmountResolver{Settings: p}
}

// Resolve returns the active tuition amount, never below the gateway minimum.
// Clamping is not an error; it is reported on the result and logged.
func (r *AmountResolver) Resolve(ctx context.Context) (Resolution, error) {
	res := Resolution{Configured: DefaultTuitionAmount}

	row, err := r.Settings.ActivePaymentSetting(ctx)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "load active payment setting")
	}
	if row != nil {
		res.Configured = row.MonthlyAmount
		res.FromConfig = true
	}

	res.Amount = res.Configured
	if res.Configured.LessThan(GatewayMinimumAmount) {
		res.Amount = GatewayMinimumAmount
		res.Clamped = true
		log.Printf("[WARN] tuition amount %s below gateway minimum, charging %s", res.Configured, GatewayMinimumAmount)
	}
	return res, nil
}
