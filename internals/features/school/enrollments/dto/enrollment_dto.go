package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	enrollmentService "academia_backend/internals/features/school/enrollments/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
)

const dateLayout = "2006-01-02"

/* ==========================
   Shared blocks
========================== */

type PersonRequest struct {
	Name           string `json:"name"            validate:"required,max=100"`
	LastName       string `json:"last_name"       validate:"required,max=100"`
	DocumentType   string `json:"document_type"   validate:"required,oneof=CC TI CE PA"`
	DocumentNumber string `json:"document_number" validate:"required,max=30"`
	BirthDate      string `json:"birth_date"      validate:"omitempty,datetime=2006-01-02"`
	BirthPlace     string `json:"birth_place"     validate:"omitempty,max=120"`
	Gender         string `json:"gender"          validate:"required,oneof=M F"`
	Address        string `json:"address"         validate:"omitempty,max=200"`
	Neighborhood   string `json:"neighborhood"    validate:"omitempty,max=120"`
	City           string `json:"city"            validate:"omitempty,max=120"`
	Phone          string `json:"phone"           validate:"omitempty,max=30"`
}

type MusicalProfileRequest struct {
	PlaysInstrument   *bool    `json:"plays_instrument"`
	Instruments       []string `json:"instruments"        validate:"omitempty,max=10,dive,max=60"`
	HasPriorStudies   *bool    `json:"has_prior_studies"`
	Schools           string   `json:"schools"            validate:"omitempty,max=500"`
	DesiredInstrument string   `json:"desired_instrument" validate:"omitempty,max=60"`
	Modality          string   `json:"modality"           validate:"omitempty,oneof=infantil juvenil adultos"`
	Level             *int     `json:"level"              validate:"omitempty,min=1,max=10"`
}

/* ==========================
   Adult
========================== */

type AdultEnrollmentRequest struct {
	PersonRequest
	MusicalProfileRequest
	Email     string `json:"email"      validate:"required,email,max=150"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	ProgramID string `json:"program_id" validate:"required,uuid"`
}

func (r AdultEnrollmentRequest) ToInput() enrollmentService.AdultEnrollmentInput {
	return enrollmentService.AdultEnrollmentInput{
		Responsible: responsibleInput(r.PersonRequest, r.Email, r.Password, r.MusicalProfileRequest),
		ProgramID:   uuid.MustParse(r.ProgramID),
	}
}

/* ==========================
   Minor
========================== */

type ChildRequest struct {
	PersonRequest
	MusicalProfileRequest
	Email     string `json:"email"      validate:"omitempty,email,max=150"`
	ProgramID string `json:"program_id" validate:"required,uuid"`
}

type GuardianRequest struct {
	PersonRequest
	Email    string `json:"email"    validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type MinorEnrollmentRequest struct {
	Guardian GuardianRequest `json:"guardian" validate:"required"`
	Children []ChildRequest  `json:"children" validate:"required,min=1,max=10,dive"`
}

func (r MinorEnrollmentRequest) ToInput() enrollmentService.MinorEnrollmentInput {
	out := enrollmentService.MinorEnrollmentInput{
		Responsible: responsibleInput(r.Guardian.PersonRequest, r.Guardian.Email, r.Guardian.Password, MusicalProfileRequest{}),
		Children:    make([]enrollmentService.ChildInput, 0, len(r.Children)),
	}
	for _, ch := range r.Children {
		p := ch.PersonRequest
		out.Children = append(out.Children, enrollmentService.ChildInput{
			Student: userService.StudentInput{
				Name:           p.Name,
				LastName:       p.LastName,
				Email:          ch.Email,
				DocumentType:   userModel.DocumentType(p.DocumentType),
				DocumentNumber: p.DocumentNumber,
				BirthDate:      parseDate(p.BirthDate),
				BirthPlace:     p.BirthPlace,
				Gender:         userModel.Gender(p.Gender),
				Contact:        contactInput(p),
				Profile:        profileInput(ch.MusicalProfileRequest),
			},
			ProgramID: uuid.MustParse(ch.ProgramID),
		})
	}
	return out
}

/* ==========================
   Mapping helpers
========================== */

func responsibleInput(p PersonRequest, email, password string, m MusicalProfileRequest) userService.ResponsibleInput {
	return userService.ResponsibleInput{
		Name:           p.Name,
		LastName:       p.LastName,
		Email:          email,
		Password:       password,
		DocumentType:   userModel.DocumentType(p.DocumentType),
		DocumentNumber: p.DocumentNumber,
		BirthDate:      parseDate(p.BirthDate),
		BirthPlace:     p.BirthPlace,
		Gender:         userModel.Gender(p.Gender),
		Contact:        contactInput(p),
		Profile:        profileInput(m),
	}
}

func contactInput(p PersonRequest) userService.ContactInput {
	return userService.ContactInput{
		Address:      p.Address,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		Phone:        p.Phone,
	}
}

func profileInput(m MusicalProfileRequest) userService.MusicalProfile {
	out := userService.MusicalProfile{
		PlaysInstrument:   m.PlaysInstrument,
		Instruments:       m.Instruments,
		HasPriorStudies:   m.HasPriorStudies,
		Schools:           m.Schools,
		DesiredInstrument: m.DesiredInstrument,
		Level:             m.Level,
	}
	if s := strings.TrimSpace(m.Modality); s != "" {
		mod := userModel.Modality(s)
		out.Modality = &mod
	}
	return out
}

// parseDate expects an already validated value; anything else yields nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
