package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	catalog "scholartrack_backend/internals/seeds/catalog"
)

// RunAllSeeds: katalog (institusi + beasiswa). Idempotent.
func RunAllSeeds(ctx context.Context, db *gorm.DB, catalogFile string, log *zap.Logger) error {
	//* Catalog
	return catalog.SeedCatalogFromJSON(ctx, db, catalogFile, log)
}
