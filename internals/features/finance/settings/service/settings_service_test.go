package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia_backend/internals/databases/dbtest"
	model "academia_backend/internals/features/finance/settings/model"
)

func TestActivatePaymentSetting_SingleActiveRow(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_, err := ActivatePaymentSetting(ctx, db, decimal.NewFromInt(90000))
	require.NoError(t, err)
	latest, err := ActivatePaymentSetting(ctx, db, decimal.NewFromInt(120000))
	require.NoError(t, err)

	var active int64
	require.NoError(t, db.Model(&model.PaymentSetting{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)
	assert.Equal(t, int64(2), dbtest.Count(t, db, &model.PaymentSetting{}))

	row, err := NewGormProvider(db).ActivePaymentSetting(ctx)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, latest.ID, row.ID)
	assert.True(t, decimal.NewFromInt(120000).Equal(row.MonthlyAmount))
}

func TestActivateWompiSetting_InfersEnvironment(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	row, err := ActivateWompiSetting(ctx, db, model.WompiSetting{PublicKey: "pub_test_abc", PrivateKey: "prv_test_abc"})
	require.NoError(t, err)
	assert.Equal(t, model.WompiEnvTest, row.Environment)

	row, err = ActivateWompiSetting(ctx, db, model.WompiSetting{PublicKey: "pub_prod_abc", PrivateKey: "prv_prod_abc"})
	require.NoError(t, err)
	assert.Equal(t, model.WompiEnvProduction, row.Environment)

	got, err := NewGormProvider(db).ActiveWompiSetting(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, row.ID, got.ID)
}

func TestGormProvider_NothingActive(t *testing.T) {
	db := dbtest.Open(t)
	p := NewGormProvider(db)

	pay, err := p.ActivePaymentSetting(context.Background())
	require.NoError(t, err)
	assert.Nil(t, pay)

	w, err := p.ActiveWompiSetting(context.Background())
	require.NoError(t, err)
	assert.Nil(t, w)
}
