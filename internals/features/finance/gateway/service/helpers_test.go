package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	paymentModel "academia_backend/internals/features/finance/payments/model"
	enrollmentModel "academia_backend/internals/features/school/enrollments/model"
	userModel "academia_backend/internals/features/users/user/model"
)

// seedPending stores a student with a waiting enrollment and its pending payment.
func seedPending(t *testing.T, db *gorm.DB, reference string) (*paymentModel.Payment, *enrollmentModel.Enrollment) {
	t.Helper()

	email := reference + "@example.com"
	student := &userModel.UserModel{
		Name:           "Ana",
		LastName:       "Gómez",
		Email:          &email,
		Password:       "x",
		DocumentType:   userModel.DocumentNationalID,
		DocumentNumber: "doc-" + reference,
	}
	require.NoError(t, db.Create(student).Error)

	e := &enrollmentModel.Enrollment{
		StudentID:      student.ID,
		ProgramID:      uuid.New(),
		EnrollmentDate: time.Now().UTC().Truncate(24 * time.Hour),
		Status:         enrollmentModel.EnrollmentStatusWaiting,
	}
	require.NoError(t, db.Create(e).Error)

	amount := decimal.NewFromInt(85000)
	p := &paymentModel.Payment{
		StudentID:       student.ID,
		ProgramID:       e.ProgramID,
		EnrollmentID:    e.ID,
		Concept:         "Matrícula Piano - Ana Gómez",
		PaymentType:     paymentModel.PaymentTypeSingle,
		Amount:          amount,
		OriginalAmount:  amount,
		PaidAmount:      decimal.Zero,
		RemainingAmount: amount,
		DueDate:         e.EnrollmentDate.AddDate(0, 0, 30),
		Status:          paymentModel.PaymentStatusPending,
		WompiReference:  reference,
	}
	require.NoError(t, db.Create(p).Error)
	return p, e
}
