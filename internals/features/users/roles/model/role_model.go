package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID        uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	Name      string    `gorm:"column:role_name;size:50;not null;uniqueIndex" json:"role_name"`
	CreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
}

func (Role) TableName() string { return "roles" }

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type UserRole struct {
	UserRoleID uuid.UUID `gorm:"column:user_role_id;type:uuid;primaryKey" json:"user_role_id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_role" json:"user_id"`
	RoleID     uuid.UUID `gorm:"column:role_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_role" json:"role_id"`
	AssignedAt time.Time `gorm:"column:assigned_at;not null" json:"assigned_at"`
}

func (UserRole) TableName() string { return "user_roles" }

func (ur *UserRole) BeforeCreate(tx *gorm.DB) error {
	if ur.UserRoleID == uuid.Nil {
		ur.UserRoleID = uuid.New()
	}
	if ur.AssignedAt.IsZero() {
		ur.AssignedAt = time.Now().UTC()
	}
	return nil
}
