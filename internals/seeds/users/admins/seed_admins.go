package admins

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	roleService "academia_backend/internals/features/users/roles/service"
	userModel "academia_backend/internals/features/users/user/model"
	userService "academia_backend/internals/features/users/user/service"
)

type AdminSeed struct {
	Name           string `json:"name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Gender         string `json:"gender"`
}

// SeedAdminsFromJSON creates administrator accounts; existing emails are skipped.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading admins file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrap(err, "read admins seed")
	}
	var inputs []AdminSeed
	if err := sonic.Unmarshal(content, &inputs); err != nil {
		return errors.Wrap(err, "decode admins seed")
	}
	return SeedAdmins(db, inputs)
}

func SeedAdmins(db *gorm.DB, inputs []AdminSeed) error {
	for _, in := range inputs {
		var n int64
		if err := db.Model(&userModel.UserModel{}).Where("email = ?", in.Email).Count(&n).Error; err != nil {
			return errors.Wrapf(err, "check admin %q", in.Email)
		}
		if n > 0 {
			log.Printf("ℹ️ Admin '%s' already exists, skipped.", in.Email)
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			u, err := userService.CreateResponsible(tx, userService.ResponsibleInput{
				Name:           in.Name,
				LastName:       in.LastName,
				Email:          in.Email,
				Password:       in.Password,
				DocumentType:   userModel.DocumentType(in.DocumentType),
				DocumentNumber: in.DocumentNumber,
				Gender:         userModel.Gender(in.Gender),
			}, false)
			if err != nil {
				return err
			}
			_, err = roleService.AssignRole(tx, u, constants.RoleAdmin)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "insert admin %q", in.Email)
		}
		log.Printf("✅ Admin '%s' inserted", in.Email)
	}
	return nil
}
