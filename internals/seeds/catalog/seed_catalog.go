package catalog

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholartrack_backend/internals/features/catalog/model"
	"scholartrack_backend/internals/helpers/dbtime"
)

type InstitutionSeed struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    *string   `json:"city"`
	State   *string   `json:"state"`
	Website *string   `json:"website"`
}

type ScholarshipSeed struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Provider  *string         `json:"provider"`
	AmountMin *float64        `json:"amount_min"`
	AmountMax *float64        `json:"amount_max"`
	Deadline  *dbtime.Instant `json:"deadline"`
	URL       *string         `json:"url"`
}

// File adalah isi file seed katalog (CATALOG_SEED_FILE).
type File struct {
	Institutions []InstitutionSeed `json:"institutions"`
	Scholarships []ScholarshipSeed `json:"scholarships"`
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog seed %s", path)
	}
	var f File
	if err := sonic.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "decode catalog seed %s", path)
	}
	return &f, nil
}

func (f *File) InstitutionModels() []model.InstitutionModel {
	out := make([]model.InstitutionModel, 0, len(f.Institutions))
	for _, s := range f.Institutions {
		if s.ID == uuid.Nil || s.Name == "" {
			continue
		}
		out = append(out, model.InstitutionModel{
			InstitutionID:      s.ID,
			InstitutionName:    s.Name,
			InstitutionCity:    s.City,
			InstitutionState:   s.State,
			InstitutionWebsite: s.Website,
		})
	}
	return out
}

func (f *File) ScholarshipModels() []model.ScholarshipModel {
	out := make([]model.ScholarshipModel, 0, len(f.Scholarships))
	for _, s := range f.Scholarships {
		if s.ID == uuid.Nil || s.Title == "" {
			continue
		}
		out = append(out, model.ScholarshipModel{
			ScholarshipID:        s.ID,
			ScholarshipTitle:     s.Title,
			ScholarshipProvider:  s.Provider,
			ScholarshipAmountMin: s.AmountMin,
			ScholarshipAmountMax: s.AmountMax,
			ScholarshipDeadline:  s.Deadline.Ptr(),
			ScholarshipURL:       s.URL,
		})
	}
	return out
}

// SeedCatalogFromJSON meng-insert katalog dari file; id yang sudah ada dilewati.
func SeedCatalogFromJSON(ctx context.Context, db *gorm.DB, path string, log *zap.Logger) error {
	log.Info("📥 membaca seed katalog", zap.String("file", path))
	f, err := LoadFile(path)
	if err != nil {
		return err
	}

	insts := f.InstitutionModels()
	schs := f.ScholarshipModels()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(insts) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&insts)
			if res.Error != nil {
				return errors.Wrap(res.Error, "insert institutions")
			}
			log.Info("✅ institutions seeded", zap.Int64("inserted", res.RowsAffected), zap.Int("total", len(insts)))
		}
		if len(schs) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&schs)
			if res.Error != nil {
				return errors.Wrap(res.Error, "insert scholarships")
			}
			log.Info("✅ scholarships seeded", zap.Int64("inserted", res.RowsAffected), zap.Int("total", len(schs)))
		}
		return nil
	})
}
