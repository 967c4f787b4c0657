package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
)

type row struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Target    uuid.UUID
	Status    workflow.Status
	Deadline  *time.Time
	CreatedAt time.Time
	Counter   int
}

func (r row) GetID() uuid.UUID           { return r.ID }
func (r row) GetOwnerID() uuid.UUID      { return r.Owner }
func (r row) GetTargetID() uuid.UUID     { return r.Target }
func (r row) GetStatus() workflow.Status { return r.Status }
func (r row) GetDeadline() *time.Time    { return r.Deadline }
func (r row) GetCreatedAt() time.Time    { return r.CreatedAt }

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRow(owner uuid.UUID, status workflow.Status, createdOffset time.Duration, deadline *time.Time) row {
	return row{
		ID:        uuid.New(),
		Owner:     owner,
		Target:    uuid.New(),
		Status:    status,
		Deadline:  deadline,
		CreatedAt: base.Add(createdOffset),
	}
}

func at(d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestMemoryStore_CreateRejectsDuplicateTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	owner := uuid.New()

	first := newRow(owner, "researching", 0, nil)
	_, err := s.Create(ctx, first)
	require.NoError(t, err)

	dup := newRow(owner, "researching", time.Minute, nil)
	dup.Target = first.Target
	_, err = s.Create(ctx, dup)

	var ce *workflow.ConflictError
	require.ErrorAs(t, err, &ce)

	// target sama, owner lain → boleh
	other := newRow(uuid.New(), "researching", 0, nil)
	other.Target = first.Target
	_, err = s.Create(ctx, other)
	assert.NoError(t, err)
}

func TestMemoryStore_OwnerScoping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	alice, bob := uuid.New(), uuid.New()

	r, err := s.Create(ctx, newRow(alice, "researching", 0, nil))
	require.NoError(t, err)

	var nf *workflow.NotFoundError

	_, err = s.Get(ctx, bob, r.ID)
	assert.ErrorAs(t, err, &nf)

	_, err = s.Update(ctx, bob, r.ID, func(x *row) error { x.Status = "submitted"; return nil })
	assert.ErrorAs(t, err, &nf)

	assert.ErrorAs(t, s.Delete(ctx, bob, r.ID), &nf)

	rows, err := s.List(ctx, bob, store.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	got, err := s.Get(ctx, alice, r.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.Status("researching"), got.Status)
}

func TestMemoryStore_UpdateAbortsOnMutateError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	owner := uuid.New()

	r, err := s.Create(ctx, newRow(owner, "researching", 0, nil))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update(ctx, owner, r.ID, func(x *row) error {
		x.Status = "accepted"
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.Status("researching"), got.Status)
}

func TestMemoryStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	owner := uuid.New()

	r, err := s.Create(ctx, newRow(owner, "researching", 0, nil))
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, owner, r.ID, func(x *row) error { x.Counter++; return nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.Counter)
}

func TestMemoryStore_ListFilterAndSort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	owner := uuid.New()

	a := newRow(owner, "submitted", 1*time.Hour, at(72*time.Hour))
	b := newRow(owner, "researching", 2*time.Hour, nil)
	c := newRow(owner, "submitted", 3*time.Hour, at(24*time.Hour))
	for _, r := range []row{a, b, c} {
		_, err := s.Create(ctx, r)
		require.NoError(t, err)
	}

	ids := func(rows []row) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.ID)
		}
		return out
	}

	submitted := workflow.Status("submitted")
	tests := []struct {
		name string
		q    store.ListQuery
		want []uuid.UUID
	}{
		{"created desc", store.ListQuery{SortBy: store.SortCreatedAt, Desc: true}, []uuid.UUID{c.ID, b.ID, a.ID}},
		{"created asc", store.ListQuery{SortBy: store.SortCreatedAt}, []uuid.UUID{a.ID, b.ID, c.ID}},
		{"deadline asc nil last", store.ListQuery{SortBy: store.SortDeadline}, []uuid.UUID{c.ID, a.ID, b.ID}},
		{"deadline desc nil last", store.ListQuery{SortBy: store.SortDeadline, Desc: true}, []uuid.UUID{a.ID, c.ID, b.ID}},
		{"status filter", store.ListQuery{Status: &submitted, SortBy: store.SortDeadline}, []uuid.UUID{c.ID, a.ID}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.List(ctx, owner, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(rows))
		})
	}
}

func TestMemoryStore_DeleteThenRecreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore[row]("application")
	owner := uuid.New()

	r, err := s.Create(ctx, newRow(owner, "researching", 0, nil))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, owner, r.ID))

	var nf *workflow.NotFoundError
	_, err = s.Get(ctx, owner, r.ID)
	assert.ErrorAs(t, err, &nf)

	again := newRow(owner, "researching", time.Minute, nil)
	again.Target = r.Target
	_, err = s.Create(ctx, again)
	assert.NoError(t, err)
}

func TestParseSortField(t *testing.T) {
	t.Parallel()
	assert.Equal(t, store.SortDeadline, store.ParseSortField(" Deadline "))
	assert.Equal(t, store.SortCreatedAt, store.ParseSortField("created_at"))
	assert.Equal(t, store.SortCreatedAt, store.ParseSortField("whatever"))
}
