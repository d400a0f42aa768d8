package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RelationshipType string

const (
	RelationshipFather RelationshipType = "padre"
	RelationshipMother RelationshipType = "madre"
	RelationshipSpouse RelationshipType = "conyuge"
	RelationshipOther  RelationshipType = "otro"
)

// ParentGuardian links a responsible adult to a minor student.
type ParentGuardian struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID        `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	GuardianUserID *uuid.UUID       `gorm:"column:guardian_user_id;type:uuid;index" json:"guardian_user_id,omitempty"`
	Relationship   RelationshipType `gorm:"column:relationship_type;type:varchar(10);not null" json:"relationship_type"`
	GuardianName   string           `gorm:"column:guardian_name;size:200;not null" json:"guardian_name"`
	Address        string           `gorm:"column:address;size:255" json:"address,omitempty"`
	Phone          string           `gorm:"column:phone;size:30" json:"phone,omitempty"`

	AuthorizationSigned bool       `gorm:"column:authorization_signed;not null;default:false" json:"authorization_signed"`
	AuthorizationDate   *time.Time `gorm:"column:authorization_date" json:"authorization_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ParentGuardian) TableName() string { return "parent_guardians" }

func (p *ParentGuardian) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
