package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia_backend/internals/databases/dbtest"
	paymentModel "academia_backend/internals/features/finance/payments/model"
	settingsModel "academia_backend/internals/features/finance/settings/model"
	settingsService "academia_backend/internals/features/finance/settings/service"
	userModel "academia_backend/internals/features/users/user/model"
	"academia_backend/internals/helpers/dbtime"
)

func TestPaymentWriter_Create(t *testing.T) {
	db := dbtest.Open(t)

	student := &userModel.UserModel{ID: uuid.New(), Name: "Ana", LastName: "Gómez"}
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	w := NewPaymentWriter(NewAmountResolver(settingsService.StaticProvider{
		Payment: &settingsModel.PaymentSetting{MonthlyAmount: decimal.NewFromInt(1000), IsActive: true},
	}))
	w.Now = func() time.Time { return now }

	enrollmentID := uuid.New()
	p, err := w.Create(context.Background(), db, PaymentInput{
		Student:      student,
		ProgramID:    uuid.New(),
		EnrollmentID: enrollmentID,
		ProgramName:  "Piano",
	})
	require.NoError(t, err)

	assert.Equal(t, paymentModel.PaymentStatusPending, p.Status)
	assert.Equal(t, paymentModel.PaymentTypeSingle, p.PaymentType)
	assert.Equal(t, "Matrícula Piano - Ana Gómez", p.Concept)
	assert.True(t, GatewayMinimumAmount.Equal(p.Amount))
	assert.True(t, p.Amount.Equal(p.OriginalAmount))
	assert.True(t, p.Amount.Equal(p.RemainingAmount))
	assert.True(t, p.PaidAmount.IsZero())
	assert.Equal(t, dbtime.DateOf(now).AddDate(0, 0, DueDays), p.DueDate)
	assert.Regexp(t, `^MAT-`+regexp.QuoteMeta(enrollmentID.String())+`-\d+$`, p.WompiReference)

	assert.Equal(t, int64(1), dbtest.Count(t, db, &paymentModel.Payment{}))
}
