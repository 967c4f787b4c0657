package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"scholartrack_backend/internals/features/tracking/workflow"
)

// MemoryStore adalah Store in-process (STORE_DRIVER=memory & test).
// Satu mutex menjaga semua operasi, jadi read-modify-write Update selalu atomik.
type MemoryStore[T Entity] struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]T
	resource string
}

func NewMemoryStore[T Entity](resource string) *MemoryStore[T] {
	return &MemoryStore[T]{rows: make(map[uuid.UUID]T), resource: resource}
}

func (s *MemoryStore[T]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if _, ok := s.rows[rec.GetID()]; ok {
		return zero, workflow.Conflict("%s id already exists", s.resource)
	}
	for _, r := range s.rows {
		if r.GetOwnerID() == rec.GetOwnerID() && r.GetTargetID() == rec.GetTargetID() {
			return zero, workflow.Conflict("%s for this target already exists", s.resource)
		}
	}
	s.rows[rec.GetID()] = rec
	return rec, nil
}

func (s *MemoryStore[T]) Get(_ context.Context, ownerID, id uuid.UUID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok || r.GetOwnerID() != ownerID {
		var zero T
		return zero, workflow.NotFound(s.resource)
	}
	return r, nil
}

func (s *MemoryStore[T]) List(_ context.Context, ownerID uuid.UUID, q ListQuery) ([]T, error) {
	s.mu.Lock()
	out := make([]T, 0)
	for _, r := range s.rows {
		if r.GetOwnerID() != ownerID {
			continue
		}
		if q.Status != nil && r.GetStatus() != *q.Status {
			continue
		}
		out = append(out, r)
	}
	s.mu.Unlock()

	// urutan dasar id naik, supaya tie-break sama dengan GormStore
	sort.Slice(out, func(i, j int) bool { return workflow.LessID(out[i].GetID(), out[j].GetID()) })

	switch q.SortBy {
	case SortDeadline:
		workflow.SortByDeadline(out, q.Desc)
	default:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].GetCreatedAt(), out[j].GetCreatedAt()
			if q.Desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	}
	return out, nil
}

func (s *MemoryStore[T]) Update(_ context.Context, ownerID, id uuid.UUID, mutate func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	r, ok := s.rows[id]
	if !ok || r.GetOwnerID() != ownerID {
		return zero, workflow.NotFound(s.resource)
	}
	// T biasanya struct by-value; mutate bekerja di salinan, commit hanya jika sukses
	cp := r
	if err := mutate(&cp); err != nil {
		return zero, err
	}
	s.rows[id] = cp
	return cp, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok || r.GetOwnerID() != ownerID {
		return workflow.NotFound(s.resource)
	}
	delete(s.rows, id)
	return nil
}
