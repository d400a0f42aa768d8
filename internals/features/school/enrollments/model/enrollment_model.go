package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusWaiting   EnrollmentStatus = "waiting"
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

type Enrollment struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID        `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	ProgramID      uuid.UUID        `gorm:"column:program_id;type:uuid;not null;index" json:"program_id"`
	EnrollmentDate time.Time        `gorm:"column:enrollment_date;type:date;not null" json:"enrollment_date"`
	Status         EnrollmentStatus `gorm:"column:status;type:varchar(20);not null;default:'waiting'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Enrollment) TableName() string { return "enrollments" }

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
