package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	roleModel "academia_backend/internals/features/users/roles/model"
	userModel "academia_backend/internals/features/users/user/model"
)

var ErrEmptyRoleName = errors.New("role name is required")

// EnsureRole returns the role with the given name, creating it first when missing.
// The insert ignores conflicts on the unique name, so two callers creating the same
// role at once both end up reading the single stored row.
func EnsureRole(tx *gorm.DB, name string) (*roleModel.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoleName
	}

	candidate := roleModel.Role{Name: name}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_name"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return nil, errors.Wrapf(err, "create role %q", name)
	}

	var role roleModel.Role
	if err := tx.Where("role_name = ?", name).Take(&role).Error; err != nil {
		return nil, errors.Wrapf(err, "load role %q", name)
	}
	return &role, nil
}

// AttachRole links a user to a role. Attaching twice keeps a single link.
func AttachRole(tx *gorm.DB, user *userModel.UserModel, role *roleModel.Role) error {
	link := roleModel.UserRole{UserID: user.ID, RoleID: role.ID}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
		DoNothing: true,
	}).Create(&link).Error
	return errors.Wrapf(err, "attach role %q", role.Name)
}

// AssignRole makes sure the role exists and gives it to the user.
func AssignRole(tx *gorm.DB, user *userModel.UserModel, name string) (*roleModel.Role, error) {
	role, err := EnsureRole(tx, name)
	if err != nil {
		return nil, err
	}
	if err := AttachRole(tx, user, role); err != nil {
		return nil, err
	}
	return role, nil
}

// UserRoleNames lists the role names held by a user.
func UserRoleNames(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var names []string
	err := db.Table("user_roles ur").
		Select("r.role_name").
		Joins("JOIN roles r ON r.role_id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Order("r.role_name").
		Pluck("r.role_name", &names).Error
	return names, err
}
