package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "academia_backend/internals/features/finance/settings/model"
)

// ActivatePaymentSetting stores a new tuition price and makes it the only active row.
func ActivatePaymentSetting(ctx context.Context, db *gorm.DB, amount decimal.Decimal) (*model.PaymentSetting, error) {
	row := &model.PaymentSetting{MonthlyAmount: amount, IsActive: true}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PaymentSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return errors.Wrap(err, "deactivate payment settings")
		}
		return errors.Wrap(tx.Create(row).Error, "create payment setting")
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ActivateWompiSetting stores gateway credentials and makes them the only active row.
func ActivateWompiSetting(ctx context.Context, db *gorm.DB, in model.WompiSetting) (*model.WompiSetting, error) {
	row := in
	row.IsActive = true
	if row.Environment == "" {
		row.Environment = model.WompiEnvTest
		if !row.IsSandbox() {
			row.Environment = model.WompiEnvProduction
		}
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.WompiSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return errors.Wrap(err, "deactivate wompi settings")
		}
		return errors.Wrap(tx.Create(&row).Error, "create wompi setting")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
