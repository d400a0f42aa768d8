package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	paymentModel "academia_backend/internals/features/finance/payments/model"
	paymentService "academia_backend/internals/features/finance/payments/service"
	programService "academia_backend/internals/features/school/programs/service"
	guardianService "academia_backend/internals/features/users/guardians/service"
	roleService "academia_backend/internals/features/users/roles/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
)

// MaxChildren caps how many minors one guardian may enroll in a single submission.
const MaxChildren = 10

var (
	ErrProgramNotFound = programService.ErrProgramNotFound
	ErrNoChildren      = errors.New("at least one child is required")
	ErrTooManyChildren = errors.Errorf("no more than %d children per submission", MaxChildren)
)

// guardianRelationshipLabel is the label stored for guardians enrolled through
// the minor flow; the form does not ask for the exact relationship.
const guardianRelationshipLabel = "Guardian"

/* ==========================
   Inputs / result
========================== */

type AdultEnrollmentInput struct {
	Responsible userService.ResponsibleInput
	ProgramID   uuid.UUID
}

type ChildInput struct {
	Student   userService.StudentInput
	ProgramID uuid.UUID
}

type MinorEnrollmentInput struct {
	Responsible userService.ResponsibleInput
	Children    []ChildInput
}

type EnrollmentResult struct {
	Responsible *userModel.UserModel    `json:"responsible"`
	Payments    []*paymentModel.Payment `json:"payments"`
}

/* ==========================
   Service
========================== */

type EnrollmentService struct {
	DB       *gorm.DB
	Payments *paymentService.PaymentWriter
	Now      func() time.Time
}

func NewEnrollmentService(db *gorm.DB, payments *paymentService.PaymentWriter) *EnrollmentService {
	return &EnrollmentService{DB: db, Payments: payments, Now: time.Now}
}

// ProcessAdultEnrollment registers an adult who is both account holder and
// student, opens the enrollment and its pending payment. All or nothing.
func (s *EnrollmentService) ProcessAdultEnrollment(ctx context.Context, in AdultEnrollmentInput) (*EnrollmentResult, error) {
	out := &EnrollmentResult{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		responsible, err := userService.CreateResponsible(tx, in.Responsible, true)
		if err != nil {
			return err
		}
		if _, err := roleService.AssignRole(tx, responsible, constants.RoleStudent); err != nil {
			return err
		}

		pay, err := s.enroll(ctx, tx, responsible, in.ProgramID)
		if err != nil {
			return err
		}

		out.Responsible = responsible
		out.Payments = append(out.Payments, pay)
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] adult enrollment failed: %v", err)
		return nil, err
	}

	log.Printf("[INFO] ✅ adult enrollment done user=%s payment=%s", out.Responsible.ID, out.Payments[0].WompiReference)
	return out, nil
}

// ProcessMinorEnrollment registers a guardian and each child, linking every
// child to the guardian and opening one enrollment and payment per child.
func (s *EnrollmentService) ProcessMinorEnrollment(ctx context.Context, in MinorEnrollmentInput) (*EnrollmentResult, error) {
	switch {
	case len(in.Children) == 0:
		return nil, ErrNoChildren
	case len(in.Children) > MaxChildren:
		return nil, ErrTooManyChildren
	}

	out := &EnrollmentResult{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guardian, err := userService.CreateResponsible(tx, in.Responsible, false)
		if err != nil {
			return err
		}
		if _, err := roleService.AssignRole(tx, guardian, constants.RoleGuardian); err != nil {
			return err
		}

		for i, child := range in.Children {
			student, err := userService.CreateStudent(tx, child.Student)
			if err != nil {
				return errors.Wrapf(err, "child %d", i+1)
			}
			if _, err := roleService.AssignRole(tx, student, constants.RoleStudent); err != nil {
				return err
			}
			if _, err := guardianService.LinkGuardian(tx, guardian, student, guardianRelationshipLabel); err != nil {
				return err
			}

			pay, err := s.enroll(ctx, tx, student, child.ProgramID)
			if err != nil {
				return errors.Wrapf(err, "child %d", i+1)
			}
			out.Payments = append(out.Payments, pay)
		}

		out.Responsible = guardian
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] minor enrollment failed: %v", err)
		return nil, err
	}

	log.Printf("[INFO] ✅ minor enrollment done guardian=%s children=%d", out.Responsible.ID, len(out.Payments))
	return out, nil
}

// enroll opens the enrollment for student and the payment that goes with it.
func (s *EnrollmentService) enroll(ctx context.Context, tx *gorm.DB, student *userModel.UserModel, programID uuid.UUID) (*paymentModel.Payment, error) {
	enrollment, err := CreateEnrollment(tx, student, programID, s.now())
	if err != nil {
		return nil, err
	}

	programName, err := programService.DisplayName(tx, programID)
	if err != nil {
		return nil, err
	}

	return s.Payments.Create(ctx, tx, paymentService.PaymentInput{
		Student:      student,
		ProgramID:    programID,
		EnrollmentID: enrollment.ID,
		ProgramName:  programName,
	})
}

func (s *EnrollmentService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
