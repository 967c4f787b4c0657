package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholartrack_backend/internals/features/tracking/workflow"
)

// Columns memetakan peran kolom ke nama kolom fisik tabel.
type Columns struct {
	ID        string
	Owner     string
	Target    string
	Status    string
	Deadline  string
	CreatedAt string
}

// GormStore menyimpan record di Postgres lewat GORM.
// Keunikan (owner, target) dijaga oleh unique index di DB, bukan oleh aplikasi.
type GormStore[T Entity] struct {
	DB       *gorm.DB
	Resource string
	Cols     Columns
}

func NewGormStore[T Entity](db *gorm.DB, resource string, cols Columns) *GormStore[T] {
	return &GormStore[T]{DB: db, Resource: resource, Cols: cols}
}

func (s *GormStore[T]) scoped(ctx context.Context, db *gorm.DB, ownerID, id uuid.UUID) *gorm.DB {
	return db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ? AND %s = ?", s.Cols.ID, s.Cols.Owner), id, ownerID)
}

func (s *GormStore[T]) Create(ctx context.Context, rec T) (T, error) {
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		var zero T
		if isDuplicate(err) {
			return zero, workflow.Conflict("%s for this target already exists", s.Resource)
		}
		return zero, errors.Wrapf(err, "create %s", s.Resource)
	}
	return rec, nil
}

func (s *GormStore[T]) Get(ctx context.Context, ownerID, id uuid.UUID) (T, error) {
	var rec T
	if err := s.scoped(ctx, s.DB, ownerID, id).Take(&rec).Error; err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, workflow.NotFound(s.Resource)
		}
		return zero, errors.Wrapf(err, "get %s", s.Resource)
	}
	return rec, nil
}

func (s *GormStore[T]) List(ctx context.Context, ownerID uuid.UUID, q ListQuery) ([]T, error) {
	tx := s.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", s.Cols.Owner), ownerID)
	if q.Status != nil {
		tx = tx.Where(fmt.Sprintf("%s = ?", s.Cols.Status), string(*q.Status))
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	switch q.SortBy {
	case SortDeadline:
		tx = tx.Order(fmt.Sprintf("%s %s NULLS LAST", s.Cols.Deadline, dir))
	default:
		tx = tx.Order(fmt.Sprintf("%s %s", s.Cols.CreatedAt, dir))
	}
	tx = tx.Order(fmt.Sprintf("%s ASC", s.Cols.ID))

	rows := make([]T, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", s.Resource)
	}
	return rows, nil
}

func (s *GormStore[T]) Update(ctx context.Context, ownerID, id uuid.UUID, mutate func(*T) error) (T, error) {
	var rec T
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.scoped(ctx, tx, ownerID, id).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflow.NotFound(s.Resource)
			}
			return errors.Wrapf(err, "lock %s", s.Resource)
		}
		if err := mutate(&rec); err != nil {
			return err
		}
		if err := tx.Save(&rec).Error; err != nil {
			return errors.Wrapf(err, "save %s", s.Resource)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (s *GormStore[T]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	var rec T
	res := s.scoped(ctx, s.DB, ownerID, id).Delete(&rec)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s", s.Resource)
	}
	if res.RowsAffected == 0 {
		return workflow.NotFound(s.Resource)
	}
	return nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "duplicate key") || strings.Contains(le, "unique constraint")
}
