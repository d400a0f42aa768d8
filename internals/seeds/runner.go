package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"academia_backend/internals/seeds/programs"
	"academia_backend/internals/seeds/roles"
	"academia_backend/internals/seeds/users/admins"
)

const (
	programsSeedFile = "internals/seeds/programs/data_programs.json"
	// Not committed; holds real credentials.
	adminsSeedFile = "internals/seeds/users/admins/data_admins.json"
)

func RunAllSeeds(db *gorm.DB) error {
	if err := roles.SeedRoles(db); err != nil {
		return err
	}
	if err := programs.SeedProgramsFromJSON(db, programsSeedFile); err != nil {
		return err
	}
	if _, err := os.Stat(adminsSeedFile); err == nil {
		if err := admins.SeedAdminsFromJSON(db, adminsSeedFile); err != nil {
			return err
		}
	} else {
		log.Println("⚠️ admins seed file not found, skipped")
	}
	return nil
}
