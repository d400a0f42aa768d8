package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academia_backend/internals/databases/dbtest"
	programModel "academia_backend/internals/features/school/programs/model"
	roleModel "academia_backend/internals/features/users/roles/model"
	roleService "academia_backend/internals/features/users/roles/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
	"academia_backend/internals/seeds/programs"
	"academia_backend/internals/seeds/roles"
	"academia_backend/internals/seeds/users/admins"
)

func TestSeedRoles_Idempotent(t *testing.T) {
	db := dbtest.Open(t)
	require.NoError(t, roles.SeedRoles(db))
	require.NoError(t, roles.SeedRoles(db))
	assert.Equal(t, int64(3), dbtest.Count(t, db, &roleModel.Role{}))
}

func TestSeedPrograms_SkipsExisting(t *testing.T) {
	db := dbtest.Open(t)
	in := []programs.ProgramSeed{
		{Name: "Piano", Modality: "juvenil"},
		{Name: "Canto", Description: "Técnica vocal"},
	}
	require.NoError(t, programs.SeedPrograms(db, in))
	require.NoError(t, programs.SeedPrograms(db, in))
	assert.Equal(t, int64(2), dbtest.Count(t, db, &programModel.AcademicProgram{}))

	var piano programModel.AcademicProgram
	require.NoError(t, db.Where("name = ?", "Piano").Take(&piano).Error)
	assert.Equal(t, "juvenil", piano.Modality)
	assert.True(t, piano.IsActive)
}

func TestSeedProgramsFromJSON_MissingFile(t *testing.T) {
	db := dbtest.Open(t)
	assert.Error(t, programs.SeedProgramsFromJSON(db, "does-not-exist.json"))
}

func TestSeedAdmins(t *testing.T) {
	userService.HashCost = bcrypt.MinCost
	db := dbtest.Open(t)
	in := []admins.AdminSeed{{
		Name:           "Admin",
		LastName:       "Academia",
		Email:          "admin@academia.test",
		Password:       "change-me-now",
		DocumentType:   "CC",
		DocumentNumber: "900",
	}}

	require.NoError(t, admins.SeedAdmins(db, in))
	require.NoError(t, admins.SeedAdmins(db, in))
	assert.Equal(t, int64(1), dbtest.Count(t, db, &userModel.UserModel{}))

	var u userModel.UserModel
	require.NoError(t, db.Where("email = ?", "admin@academia.test").Take(&u).Error)
	names, err := roleService.UserRoleNames(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin"}, names)
}
