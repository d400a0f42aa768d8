package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	paymentModel "academia_backend/internals/features/finance/payments/model"
	userModel "academia_backend/internals/features/users/user/model"
	"academia_backend/internals/helpers/dbtime"
)

const DueDays = 30

type PaymentInput struct {
	Student      *userModel.UserModel
	ProgramID    uuid.UUID
	EnrollmentID uuid.UUID
	ProgramName  string
}

type PaymentWriter struct {
	Amounts *AmountResolver
	Now     func() time.Time
}

func NewPaymentWriter(amounts *AmountResolver) *PaymentWriter {
	return &PaymentWriter{Amounts: amounts, Now: time.Now}
}

// Create stores the pending tuition payment for one enrollment.
func (w *PaymentWriter) Create(ctx context.Context, tx *gorm.DB, in PaymentInput) (*paymentModel.Payment, error) {
	res, err := w.Amounts.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	day := dbtime.DateOf(w.now())

	p := &paymentModel.Payment{
		StudentID:       in.Student.ID,
		ProgramID:       in.ProgramID,
		EnrollmentID:    in.EnrollmentID,
		Concept:         Concept(in.ProgramName, in.Student.FullName()),
		PaymentType:     paymentModel.PaymentTypeSingle,
		Amount:          res.Amount,
		OriginalAmount:  res.Amount,
		PaidAmount:      decimal.Zero,
		RemainingAmount: res.Amount,
		DueDate:         day.AddDate(0, 0, DueDays),
		Status:          paymentModel.PaymentStatusPending,
		WompiReference:  NewReference(in.EnrollmentID),
	}
	if err := tx.Create(p).Error; err != nil {
		return nil, errors.Wrap(err, "create payment")
	}
	return p, nil
}

func Concept(programName, studentName string) string {
	return fmt.Sprintf("Matrícula %s - %s", programName, studentName)
}

func (w *PaymentWriter) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}
