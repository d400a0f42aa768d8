package programs

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	programModel "academia_backend/internals/features/school/programs/model"
)

type ProgramSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Modality    string `json:"modality"`
}

// SeedProgramsFromJSON inserts programs whose name is not taken yet.
func SeedProgramsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading programs file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrap(err, "read programs seed")
	}
	var inputs []ProgramSeed
	if err := sonic.Unmarshal(content, &inputs); err != nil {
		return errors.Wrap(err, "decode programs seed")
	}
	return SeedPrograms(db, inputs)
}

func SeedPrograms(db *gorm.DB, inputs []ProgramSeed) error {
	for _, in := range inputs {
		var n int64
		if err := db.Model(&programModel.AcademicProgram{}).Where("name = ?", in.Name).Count(&n).Error; err != nil {
			return errors.Wrapf(err, "check program %q", in.Name)
		}
		if n > 0 {
			log.Printf("ℹ️ Program '%s' already exists, skipped.", in.Name)
			continue
		}

		row := programModel.AcademicProgram{
			Name:        in.Name,
			Description: in.Description,
			Modality:    in.Modality,
			IsActive:    true,
		}
		if err := db.Create(&row).Error; err != nil {
			return errors.Wrapf(err, "insert program %q", in.Name)
		}
		log.Printf("✅ Program '%s' inserted", in.Name)
	}
	return nil
}
