package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "academia_backend/internals/features/users/user/model"
)

/* ==========================
   Inputs
========================== */

type ContactInput struct {
	Address      string
	Neighborhood string
	City         string
	Phone        string
}

// MusicalProfile is optional on intake; zero values fall back to the defaults.
type MusicalProfile struct {
	PlaysInstrument   *bool
	Instruments       []string
	HasPriorStudies   *bool
	Schools           string
	DesiredInstrument string
	Modality          *userModel.Modality
	Level             *int
}

type ResponsibleInput struct {
	Name           string
	LastName       string
	Email          string
	Password       string
	DocumentType   userModel.DocumentType
	DocumentNumber string
	BirthDate      *time.Time
	BirthPlace     string
	Gender         userModel.Gender
	Contact        ContactInput
	Profile        MusicalProfile
}

type StudentInput struct {
	Name           string
	LastName       string
	Email          string
	DocumentType   userModel.DocumentType
	DocumentNumber string
	BirthDate      *time.Time
	BirthPlace     string
	Gender         userModel.Gender
	Contact        ContactInput
	Profile        MusicalProfile
}

// HashCost is the bcrypt cost used for new accounts.
var HashCost = bcrypt.DefaultCost

/* ==========================
   Creators
========================== */

// CreateResponsible stores the account holder. When alsoStudent is set the
// musical profile is persisted too, with defaults for anything missing.
func CreateResponsible(tx *gorm.DB, in ResponsibleInput, alsoStudent bool) (*userModel.UserModel, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &userModel.UserModel{
		Name:           strings.TrimSpace(in.Name),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          emailPtr(in.Email),
		Password:       hash,
		DocumentType:   in.DocumentType,
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		BirthDate:      in.BirthDate,
		BirthPlace:     strings.TrimSpace(in.BirthPlace),
		Gender:         in.Gender,
		Level:          userModel.DefaultLevel,
	}
	applyContact(u, in.Contact)
	if alsoStudent {
		applyProfile(u, in.Profile)
	}

	if err := tx.Create(u).Error; err != nil {
		return nil, errors.Wrap(err, "create responsible user")
	}
	return u, nil
}

// CreateStudent stores a minor's account. The student never signs in through
// this flow, so it gets a random throwaway password and must change it first.
func CreateStudent(tx *gorm.DB, in StudentInput) (*userModel.UserModel, error) {
	temp, err := temporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(temp)
	if err != nil {
		return nil, err
	}

	u := &userModel.UserModel{
		Name:               strings.TrimSpace(in.Name),
		LastName:           strings.TrimSpace(in.LastName),
		Email:              emailPtr(in.Email),
		Password:           hash,
		DocumentType:       in.DocumentType,
		DocumentNumber:     strings.TrimSpace(in.DocumentNumber),
		BirthDate:          in.BirthDate,
		BirthPlace:         strings.TrimSpace(in.BirthPlace),
		Gender:             in.Gender,
		MustChangePassword: true,
	}
	applyContact(u, in.Contact)
	applyProfile(u, in.Profile)

	if err := tx.Create(u).Error; err != nil {
		return nil, errors.Wrap(err, "create student user")
	}
	return u, nil
}

/* ==========================
   Helpers
========================== */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func temporaryPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate temporary password")
	}
	return hex.EncodeToString(buf), nil
}

func emailPtr(s string) *string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return &s
}

func applyContact(u *userModel.UserModel, c ContactInput) {
	u.Address = strings.TrimSpace(c.Address)
	u.Neighborhood = strings.TrimSpace(c.Neighborhood)
	u.City = strings.TrimSpace(c.City)
	u.Phone = strings.TrimSpace(c.Phone)
}

func applyProfile(u *userModel.UserModel, p MusicalProfile) {
	u.PlaysInstrument = p.PlaysInstrument != nil && *p.PlaysInstrument
	u.HasPriorStudies = p.HasPriorStudies != nil && *p.HasPriorStudies
	u.Schools = strings.TrimSpace(p.Schools)
	u.DesiredInstrument = strings.TrimSpace(p.DesiredInstrument)
	u.Modality = p.Modality
	u.Level = userModel.DefaultLevel
	if p.Level != nil && *p.Level > 0 {
		u.Level = *p.Level
	}
	if len(p.Instruments) > 0 {
		list := make([]string, 0, len(p.Instruments))
		for _, it := range p.Instruments {
			if s := strings.TrimSpace(it); s != "" {
				list = append(list, s)
			}
		}
		u.Instruments = list
	}
}
