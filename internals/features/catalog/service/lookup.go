// file: internals/features/catalog/service/lookup.go
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"scholartrack_backend/internals/features/tracking/workflow"
)

// Identified: entri katalog yang punya id.
type Identified interface {
	GetID() uuid.UUID
}

// Lookup membaca entri katalog berdasarkan id.
// Id tidak dikenal → *workflow.NotFoundError.
type Lookup[T Identified] interface {
	Get(ctx context.Context, id uuid.UUID) (T, error)
}

/* =========================================================
   GORM
========================================================= */

type GormLookup[T Identified] struct {
	DB       *gorm.DB
	Resource string
	IDColumn string
}

func NewGormLookup[T Identified](db *gorm.DB, resource, idColumn string) *GormLookup[T] {
	return &GormLookup[T]{DB: db, Resource: resource, IDColumn: idColumn}
}

func (l *GormLookup[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var row T
	err := l.DB.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", l.IDColumn), id).
		Take(&row).Error
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, workflow.NotFound(l.Resource)
		}
		return zero, errors.Wrapf(err, "lookup %s", l.Resource)
	}
	return row, nil
}

/* =========================================================
   In-memory (STORE_DRIVER=memory & test)
========================================================= */

type MemoryLookup[T Identified] struct {
	mu       sync.RWMutex
	items    map[uuid.UUID]T
	resource string
}

func NewMemoryLookup[T Identified](resource string, items ...T) *MemoryLookup[T] {
	l := &MemoryLookup[T]{items: make(map[uuid.UUID]T, len(items)), resource: resource}
	l.Put(items...)
	return l
}

// Put menambah / mengganti entri.
func (l *MemoryLookup[T]) Put(items ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range items {
		l.items[it.GetID()] = it
	}
}

func (l *MemoryLookup[T]) Get(_ context.Context, id uuid.UUID) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	it, ok := l.items[id]
	if !ok {
		var zero T
		return zero, workflow.NotFound(l.resource)
	}
	return it, nil
}
