package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academia_backend/internals/databases/dbtest"
	userModel "academia_backend/internals/features/users/user/model"
)

func init() {
	HashCost = bcrypt.MinCost
}

func TestCreateResponsible(t *testing.T) {
	db := dbtest.Open(t)

	plays := true
	modality := userModel.ModalityAdults
	in := ResponsibleInput{
		Name:           "  Carlos ",
		LastName:       "Mejía",
		Email:          " Carlos@Example.COM ",
		Password:       "secret123",
		DocumentType:   userModel.DocumentNationalID,
		DocumentNumber: "12345",
		Gender:         userModel.GenderMale,
		Contact:        ContactInput{City: "Medellín"},
		Profile: MusicalProfile{
			PlaysInstrument: &plays,
			Instruments:     []string{"guitarra"},
			Modality:        &modality,
		},
	}

	t.Run("as student keeps the musical profile", func(t *testing.T) {
		u, err := CreateResponsible(db, in, true)
		require.NoError(t, err)

		assert.Equal(t, "Carlos", u.Name)
		assert.Equal(t, "carlos@example.com", u.EmailOrEmpty())
		assert.NotEqual(t, "secret123", u.Password)
		assert.NoError(t, CheckPasswordHash(u.Password, "secret123"))
		assert.True(t, u.PlaysInstrument)
		assert.Equal(t, []string{"guitarra"}, []string(u.Instruments))
		require.NotNil(t, u.Modality)
		assert.Equal(t, userModel.ModalityAdults, *u.Modality)
		assert.Equal(t, "Medellín", u.City)
		assert.False(t, u.MustChangePassword)
	})

	t.Run("guardian only skips the profile", func(t *testing.T) {
		g := in
		g.Email = "guardian@example.com"
		g.DocumentNumber = "67890"

		u, err := CreateResponsible(db, g, false)
		require.NoError(t, err)
		assert.False(t, u.PlaysInstrument)
		assert.Nil(t, u.Modality)
		assert.Equal(t, userModel.DefaultLevel, u.Level)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		dup := in
		dup.DocumentNumber = "99999"
		_, err := CreateResponsible(db, dup, true)
		assert.Error(t, err)
	})
}

func TestCreateStudent(t *testing.T) {
	db := dbtest.Open(t)

	u, err := CreateStudent(db, StudentInput{
		Name:           "Mateo",
		LastName:       "López",
		DocumentType:   userModel.DocumentMinorID,
		DocumentNumber: "T-1",
		Gender:         userModel.GenderMale,
	})
	require.NoError(t, err)

	assert.Nil(t, u.Email)
	assert.True(t, u.MustChangePassword)
	assert.NotEmpty(t, u.Password)
	assert.Equal(t, userModel.DefaultLevel, u.Level)
	assert.False(t, u.PlaysInstrument)
	assert.False(t, u.HasPriorStudies)
}

func TestCreateStudent_DormantCredentials(t *testing.T) {
	db := dbtest.Open(t)

	in := StudentInput{Name: "Mateo", LastName: "López", DocumentType: userModel.DocumentMinorID, Gender: userModel.GenderMale}
	in.DocumentNumber = "T-2"
	a, err := CreateStudent(db, in)
	require.NoError(t, err)
	in.DocumentNumber = "T-3"
	b, err := CreateStudent(db, in)
	require.NoError(t, err)

	// no shared secret between students, and no guessable one
	assert.NotEqual(t, a.Password, b.Password)
	for _, guess := range []string{"", "T-2", "Mateo", "12345678", "password"} {
		assert.Error(t, CheckPasswordHash(a.Password, guess), guess)
	}
	assert.Nil(t, a.Email)
	assert.True(t, a.MustChangePassword)
}
