package roles

import (
	"log"

	"gorm.io/gorm"

	"academia_backend/internals/constants"
	roleService "academia_backend/internals/features/users/roles/service"
)

// SeedRoles makes sure the built-in roles exist.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{constants.RoleStudent, constants.RoleGuardian, constants.RoleAdmin} {
		if _, err := roleService.EnsureRole(db, name); err != nil {
			return err
		}
	}
	log.Println("✅ roles ready")
	return nil
}
