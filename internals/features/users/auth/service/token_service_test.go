package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academia_backend/internals/databases/dbtest"
	roleService "academia_backend/internals/features/users/roles/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
)

const testSecret = "test-secret"

func TestLogin(t *testing.T) {
	userService.HashCost = bcrypt.MinCost
	db := dbtest.Open(t)

	u, err := userService.CreateResponsible(db, userService.ResponsibleInput{
		Name:           "Admin",
		LastName:       "Academia",
		Email:          "admin@academia.test",
		Password:       "s3cret-pass",
		DocumentType:   userModel.DocumentNationalID,
		DocumentNumber: "1",
	}, false)
	require.NoError(t, err)
	_, err = roleService.AssignRole(db, u, "Admin")
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := Login(db, "ADMIN@academia.test", "s3cret-pass", testSecret, now)
		require.NoError(t, err)
		assert.Equal(t, u.ID, res.UserID)
		assert.Equal(t, []string{"Admin"}, res.Roles)
		assert.Equal(t, now.Add(AccessTokenTTL), res.ExpiresAt)

		tok, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
		require.NoError(t, err)
		claims := tok.Claims.(jwt.MapClaims)
		assert.Equal(t, u.ID.String(), claims["sub"])
		assert.Equal(t, []any{"Admin"}, claims["roles"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := Login(db, "admin@academia.test", "nope", testSecret, now)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := Login(db, "ghost@academia.test", "s3cret-pass", testSecret, now)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := Login(db, "admin@academia.test", "s3cret-pass", "", now)
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
