package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	roleService "academia_backend/internals/features/users/roles/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
)

// AccessTokenTTL is the lifetime of issued access tokens.
const AccessTokenTTL = 2 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingSecret      = errors.New("jwt secret is not configured")
)

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Roles       []string  `json:"roles"`
}

// Login checks the password and issues an HS256 access token carrying the user's roles.
func Login(db *gorm.DB, email, password, secret string, now time.Time) (*LoginResult, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}

	var u userModel.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if err := userService.CheckPasswordHash(u.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	roles, err := roleService.UserRoleNames(db, u.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load roles")
	}

	exp := now.Add(AccessTokenTTL)
	token, err := IssueAccessToken(u.ID, roles, secret, now, exp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp, UserID: u.ID, Roles: roles}, nil
}

func IssueAccessToken(userID uuid.UUID, roles []string, secret string, now, exp time.Time) (string, error) {
	if roles == nil {
		roles = []string{}
	}
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return signed, errors.Wrap(err, "sign access token")
}
