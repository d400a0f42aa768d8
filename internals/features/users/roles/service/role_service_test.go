package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia_backend/internals/databases/dbtest"
	roleModel "academia_backend/internals/features/users/roles/model"
	userModel "academia_backend/internals/features/users/user/model"
)

func TestEnsureRole_Idempotent(t *testing.T) {
	db := dbtest.Open(t)

	first, err := EnsureRole(db, "Student")
	require.NoError(t, err)
	second, err := EnsureRole(db, " Student ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), dbtest.Count(t, db, &roleModel.Role{}))
}

func TestEnsureRole_EmptyName(t *testing.T) {
	db := dbtest.Open(t)

	_, err := EnsureRole(db, "   ")
	assert.ErrorIs(t, err, ErrEmptyRoleName)
}

func TestAssignRole(t *testing.T) {
	db := dbtest.Open(t)

	u := &userModel.UserModel{
		ID:             uuid.New(),
		Name:           "Ana",
		LastName:       "Ruiz",
		Password:       "x",
		DocumentType:   userModel.DocumentNationalID,
		DocumentNumber: "1001",
	}
	require.NoError(t, db.Create(u).Error)

	_, err := AssignRole(db, u, "Student")
	require.NoError(t, err)
	_, err = AssignRole(db, u, "Student")
	require.NoError(t, err)
	_, err = AssignRole(db, u, "Admin")
	require.NoError(t, err)

	assert.Equal(t, int64(2), dbtest.Count(t, db, &roleModel.UserRole{}))

	names, err := UserRoleNames(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin", "Student"}, names)
}
