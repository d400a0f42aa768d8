package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicProgram struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:150;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Modality    string    `gorm:"column:modality;type:varchar(20)" json:"modality,omitempty"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AcademicProgram) TableName() string { return "academic_programs" }

func (p *AcademicProgram) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
