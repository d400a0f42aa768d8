package service

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	guardianModel "academia_backend/internals/features/users/guardians/model"
	userModel "academia_backend/internals/features/users/user/model"
)

// Checked in order; the first group with a matching synonym wins.
var relationshipSynonyms = []struct {
	kind  guardianModel.RelationshipType
	words []string
}{
	{guardianModel.RelationshipFather, []string{"padre", "papá", "papa", "father"}},
	{guardianModel.RelationshipMother, []string{"madre", "mamá", "mama", "mother"}},
	{guardianModel.RelationshipSpouse, []string{"cónyuge", "conyuge", "esposo", "esposa", "spouse"}},
}

// NormalizeRelationship maps a free-text label onto the stored enum.
func NormalizeRelationship(label string) guardianModel.RelationshipType {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return guardianModel.RelationshipOther
	}
	for _, g := range relationshipSynonyms {
		for _, w := range g.words {
			if strings.Contains(l, w) {
				return g.kind
			}
		}
	}
	return guardianModel.RelationshipOther
}

// LinkGuardian records that guardian is responsible for student. Not idempotent.
func LinkGuardian(tx *gorm.DB, guardian, student *userModel.UserModel, label string) (*guardianModel.ParentGuardian, error) {
	gid := guardian.ID
	row := &guardianModel.ParentGuardian{
		StudentID:      student.ID,
		GuardianUserID: &gid,
		Relationship:   NormalizeRelationship(label),
		GuardianName:   guardian.FullName(),
		Address:        guardian.Address,
		Phone:          guardian.Phone,
	}
	if err := tx.Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "link guardian")
	}
	return row, nil
}
