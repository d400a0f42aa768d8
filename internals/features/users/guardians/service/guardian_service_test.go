package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia_backend/internals/databases/dbtest"
	guardianModel "academia_backend/internals/features/users/guardians/model"
	userModel "academia_backend/internals/features/users/user/model"
)

func TestNormalizeRelationship(t *testing.T) {
	tests := []struct {
		label string
		want  guardianModel.RelationshipType
	}{
		{"", guardianModel.RelationshipOther},
		{"  ", guardianModel.RelationshipOther},
		{"Padre", guardianModel.RelationshipFather},
		{"papá", guardianModel.RelationshipFather},
		{"Father", guardianModel.RelationshipFather},
		{"MADRE", guardianModel.RelationshipMother},
		{"Mamá", guardianModel.RelationshipMother},
		{"padre/madre", guardianModel.RelationshipFather},
		{"Madre o Padre", guardianModel.RelationshipFather},
		{"esposo", guardianModel.RelationshipSpouse},
		{"esposa", guardianModel.RelationshipSpouse},
		{"Cónyuge", guardianModel.RelationshipSpouse},
		{"Guardian", guardianModel.RelationshipOther},
		{"abuela", guardianModel.RelationshipOther},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRelationship(tt.label))
		})
	}
}

func TestLinkGuardian(t *testing.T) {
	db := dbtest.Open(t)

	guardian := &userModel.UserModel{ID: uuid.New(), Name: "Luis", LastName: "Pérez", Address: "Calle 1", Phone: "300"}
	student := &userModel.UserModel{ID: uuid.New(), Name: "Sofía", LastName: "Pérez"}

	row, err := LinkGuardian(db, guardian, student, "Guardian")
	require.NoError(t, err)

	assert.Equal(t, student.ID, row.StudentID)
	require.NotNil(t, row.GuardianUserID)
	assert.Equal(t, guardian.ID, *row.GuardianUserID)
	assert.Equal(t, guardianModel.RelationshipOther, row.Relationship)
	assert.Equal(t, "Luis Pérez", row.GuardianName)
	assert.Equal(t, "Calle 1", row.Address)
	assert.False(t, row.AuthorizationSigned)

	// not idempotent
	_, err = LinkGuardian(db, guardian, student, "Guardian")
	require.NoError(t, err)
	assert.Equal(t, int64(2), dbtest.Count(t, db, &guardianModel.ParentGuardian{}))
}
