package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	collegeModel "scholartrack_backend/internals/features/tracking/college_applications/model"
	scholarshipModel "scholartrack_backend/internals/features/tracking/scholarship_applications/model"
)

// Models: urutan penting, katalog dulu.
func Models() []any {
	return []any{
		&catalogModel.InstitutionModel{},
		&catalogModel.ScholarshipModel{},
		&collegeModel.CollegeApplicationModel{},
		&scholarshipModel.ScholarshipApplicationModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
