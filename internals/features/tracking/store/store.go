// file: internals/features/tracking/store/store.go
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholartrack_backend/internals/features/tracking/workflow"
)

// Entity adalah record yang bisa disimpan oleh Store: milik satu owner, menunjuk satu target.
type Entity interface {
	workflow.Dated
	GetOwnerID() uuid.UUID
	GetTargetID() uuid.UUID
	GetCreatedAt() time.Time
}

type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortDeadline  SortField = "deadline"
)

// ParseSortField: nilai tak dikenal → created_at.
func ParseSortField(raw string) SortField {
	switch SortField(strings.ToLower(strings.TrimSpace(raw))) {
	case SortDeadline:
		return SortDeadline
	default:
		return SortCreatedAt
	}
}

// ListQuery: filter status (opsional) + sort. Urutan selalu stabil (tie-break id naik).
type ListQuery struct {
	Status *workflow.Status
	SortBy SortField
	Desc   bool
}

// Store adalah kontrak Tracked Entity Store.
// Semua operasi di-scope ke ownerID; record milik owner lain diperlakukan sama dengan tidak ada.
type Store[T Entity] interface {
	// Create gagal dengan *workflow.ConflictError jika (owner, target) sudah ada.
	Create(ctx context.Context, rec T) (T, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (T, error)
	List(ctx context.Context, ownerID uuid.UUID, q ListQuery) ([]T, error)
	// Update menjalankan mutate di dalam satu unit atomik (row lock / mutex) lalu menyimpan hasilnya.
	// Error dari mutate membatalkan update dan dikembalikan apa adanya.
	Update(ctx context.Context, ownerID, id uuid.UUID, mutate func(*T) error) (T, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
