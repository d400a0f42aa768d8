package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "academia_backend/internals/features/finance/settings/model"
)

// Provider hands out the active configuration rows. A nil row with a nil
// error means nothing is active.
type Provider interface {
	ActivePaymentSetting(ctx context.Context) (*model.PaymentSetting, error)
	ActiveWompiSetting(ctx context.Context) (*model.WompiSetting, error)
}

/* ===================== GORM ===================== */

type GormProvider struct {
	DB *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{DB: db}
}

func (p *GormProvider) ActivePaymentSetting(ctx context.Context) (*model.PaymentSetting, error) {
	var row model.PaymentSetting
	err := p.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (p *GormProvider) ActiveWompiSetting(ctx context.Context) (*model.WompiSetting, error) {
	var row model.WompiSetting
	err := p.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

/* ===================== Static ===================== */

// StaticProvider serves fixed rows, handy for tests and one-off tooling.
type StaticProvider struct {
	Payment *model.PaymentSetting
	Wompi   *model.WompiSetting
	Err     error
}

func (p StaticProvider) ActivePaymentSetting(ctx context.Context) (*model.PaymentSetting, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Payment == nil || !p.Payment.IsActive {
		return nil, nil
	}
	return p.Payment, nil
}

func (p StaticProvider) ActiveWompiSetting(ctx context.Context) (*model.WompiSetting, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Wompi == nil || !p.Wompi.IsActive {
		return nil, nil
	}
	return p.Wompi, nil
}
