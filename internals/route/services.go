package routes

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	catalogModel "scholartrack_backend/internals/features/catalog/model"
	catalogService "scholartrack_backend/internals/features/catalog/service"
	collegeModel "scholartrack_backend/internals/features/tracking/college_applications/model"
	collegeService "scholartrack_backend/internals/features/tracking/college_applications/service"
	scholarshipModel "scholartrack_backend/internals/features/tracking/scholarship_applications/model"
	scholarshipService "scholartrack_backend/internals/features/tracking/scholarship_applications/service"
	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/metrics"
	catalogSeed "scholartrack_backend/internals/seeds/catalog"
)

// BuildServices merakit service tracking.
//   - db != nil → GormStore + GormLookup (Postgres)
//   - db == nil → MemoryStore + MemoryLookup berisi katalog dari seed file (boleh nil)
func BuildServices(
	db *gorm.DB,
	catalog *catalogSeed.File,
	windowDays int,
	log *zap.Logger,
	m *metrics.Metrics,
) (*collegeService.CollegeApplicationService, *scholarshipService.ScholarshipApplicationService) {
	var (
		collegeStore     store.Store[collegeModel.CollegeApplicationModel]
		scholarshipStore store.Store[scholarshipModel.ScholarshipApplicationModel]
		institutions     catalogService.Lookup[catalogModel.InstitutionModel]
		scholarships     catalogService.Lookup[catalogModel.ScholarshipModel]
	)

	if db != nil {
		collegeStore = store.NewGormStore[collegeModel.CollegeApplicationModel](db, collegeService.Resource, collegeModel.Columns)
		scholarshipStore = store.NewGormStore[scholarshipModel.ScholarshipApplicationModel](db, scholarshipService.Resource, scholarshipModel.Columns)
		institutions = catalogService.NewGormLookup[catalogModel.InstitutionModel](db, "institution", "institution_id")
		scholarships = catalogService.NewGormLookup[catalogModel.ScholarshipModel](db, "scholarship", "scholarship_id")
	} else {
		collegeStore = store.NewMemoryStore[collegeModel.CollegeApplicationModel](collegeService.Resource)
		scholarshipStore = store.NewMemoryStore[scholarshipModel.ScholarshipApplicationModel](scholarshipService.Resource)
		instLookup := catalogService.NewMemoryLookup[catalogModel.InstitutionModel]("institution")
		schLookup := catalogService.NewMemoryLookup[catalogModel.ScholarshipModel]("scholarship")
		if catalog != nil {
			instLookup.Put(catalog.InstitutionModels()...)
			schLookup.Put(catalog.ScholarshipModels()...)
		}
		institutions, scholarships = instLookup, schLookup
	}

	college := collegeService.NewCollegeApplicationService(collegeStore, institutions, log, m)
	scholarship := scholarshipService.NewScholarshipApplicationService(scholarshipStore, scholarships, log, m)
	if windowDays > 0 {
		college.Tracker.WindowDays = windowDays
		scholarship.Tracker.WindowDays = windowDays
	}
	return college, scholarship
}
