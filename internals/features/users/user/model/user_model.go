package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums ===================== */

type DocumentType string
type Gender string
type Modality string

const (
	DocumentNationalID DocumentType = "CC" // cédula de ciudadanía
	DocumentMinorID    DocumentType = "TI" // tarjeta de identidad
	DocumentForeignID  DocumentType = "CE" // cédula de extranjería
	DocumentPassport   DocumentType = "PA"
)

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

const (
	ModalityChildren Modality = "infantil"
	ModalityYouth    Modality = "juvenil"
	ModalityAdults   Modality = "adultos"
)

const DefaultLevel = 1

/* ===================== Model ===================== */

// UserModel is a row of the users table. Responsible adults and students share it.
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;size:100;not null" json:"name"`
	LastName string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email    *string   `gorm:"column:email;size:255;uniqueIndex" json:"email,omitempty"`
	Password string    `gorm:"column:password;not null" json:"-"`

	DocumentType   DocumentType `gorm:"column:document_type;type:varchar(2);not null" json:"document_type"`
	DocumentNumber string       `gorm:"column:document_number;size:30;not null;uniqueIndex" json:"document_number"`
	BirthDate      *time.Time   `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	BirthPlace     string       `gorm:"column:birth_place;size:120" json:"birth_place,omitempty"`
	Gender         Gender       `gorm:"column:gender;type:varchar(1)" json:"gender,omitempty"`

	Address      string `gorm:"column:address;size:255" json:"address,omitempty"`
	Neighborhood string `gorm:"column:neighborhood;size:120" json:"neighborhood,omitempty"`
	City         string `gorm:"column:city;size:120" json:"city,omitempty"`
	Phone        string `gorm:"column:phone;size:30" json:"phone,omitempty"`

	// Musical profile (students only)
	PlaysInstrument   bool                        `gorm:"column:plays_instrument;not null;default:false" json:"plays_instrument"`
	Instruments       datatypes.JSONSlice[string] `gorm:"column:instruments" json:"instruments,omitempty"`
	HasPriorStudies   bool                        `gorm:"column:has_prior_studies;not null;default:false" json:"has_prior_studies"`
	Schools           string                      `gorm:"column:schools" json:"schools,omitempty"`
	DesiredInstrument string                      `gorm:"column:desired_instrument;size:100" json:"desired_instrument,omitempty"`
	Modality          *Modality                   `gorm:"column:modality;type:varchar(20)" json:"modality,omitempty"`
	Level             int                         `gorm:"column:level;not null;default:1" json:"level"`

	MustChangePassword bool `gorm:"column:must_change_password;not null;default:false" json:"must_change_password"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *UserModel) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}

func (u *UserModel) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
