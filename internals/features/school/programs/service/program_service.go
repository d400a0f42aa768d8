package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	programModel "academia_backend/internals/features/school/programs/model"
)

var ErrProgramNotFound = errors.New("academic program not found")

// FindByID loads a program; a missing row returns ErrProgramNotFound.
func FindByID(db *gorm.DB, id uuid.UUID) (*programModel.AcademicProgram, error) {
	var p programModel.AcademicProgram
	err := db.Where("id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrProgramNotFound, "program %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load program")
	}
	return &p, nil
}

// DisplayName returns the program name used in payment concepts.
func DisplayName(db *gorm.DB, id uuid.UUID) (string, error) {
	p, err := FindByID(db, id)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func ListActive(db *gorm.DB) ([]programModel.AcademicProgram, error) {
	var rows []programModel.AcademicProgram
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}
