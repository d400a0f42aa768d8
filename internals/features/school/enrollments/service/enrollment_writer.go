package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	enrollmentModel "academia_backend/internals/features/school/enrollments/model"
	userModel "academia_backend/internals/features/users/user/model"
	"academia_backend/internals/helpers/dbtime"
)

// CreateEnrollment opens a waiting enrollment dated on the academy's calendar day of now. Duplicates are not checked.
func CreateEnrollment(tx *gorm.DB, student *userModel.UserModel, programID uuid.UUID, now time.Time) (*enrollmentModel.Enrollment, error) {
	e := &enrollmentModel.Enrollment{
		StudentID:      student.ID,
		ProgramID:      programID,
		EnrollmentDate: dbtime.DateOf(now),
		Status:         enrollmentModel.EnrollmentStatusWaiting,
	}
	if err := tx.Create(e).Error; err != nil {
		return nil, errors.Wrap(err, "create enrollment")
	}
	return e, nil
}

// ActivateEnrollment moves a waiting enrollment to active.
func ActivateEnrollment(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&enrollmentModel.Enrollment{}).
		Where("id = ? AND status = ?", id, enrollmentModel.EnrollmentStatusWaiting).
		Update("status", enrollmentModel.EnrollmentStatusActive).Error
}
