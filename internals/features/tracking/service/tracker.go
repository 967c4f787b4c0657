// file: internals/features/tracking/service/tracker.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
	"scholartrack_backend/internals/metrics"
)

// Record adalah *T yang bisa diinisialisasi & di-stamp oleh Tracker.
type Record[T any] interface {
	*T
	store.Entity
	Init(id, ownerID uuid.UUID, now time.Time)
	SetStatus(s workflow.Status)
	GetStamps() workflow.Stamps
	SetStamps(st workflow.Stamps)
	Touch(now time.Time)
}

// Tracker menjalankan lifecycle satu track di atas Store:
// create / get / list / update (+ transisi status) / delete / overview.
type Tracker[T store.Entity, PT Record[T]] struct {
	Track      workflow.Track
	Store      store.Store[T]
	WindowDays int
	Now        func() time.Time
	Log        *zap.Logger
	Metrics    *metrics.Metrics
}

func New[T store.Entity, PT Record[T]](track workflow.Track, st store.Store[T], log *zap.Logger, m *metrics.Metrics) *Tracker[T, PT] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker[T, PT]{
		Track:      track,
		Store:      st,
		WindowDays: workflow.DefaultWindowDays,
		Now:        func() time.Time { return time.Now().UTC() },
		Log:        log.With(zap.String("track", track.Name)),
		Metrics:    m,
	}
}

// ParseStatus: "" → status awal track.
func (t *Tracker[T, PT]) ParseStatus(raw string) (workflow.Status, error) {
	if raw == "" {
		return t.Track.Initial, nil
	}
	return t.Track.Parse(raw)
}

// Create membuat record baru milik ownerID.
// fill mengisi target & field tambahan; status & stamps diisi Tracker.
func (t *Tracker[T, PT]) Create(ctx context.Context, ownerID uuid.UUID, rawStatus string, fill func(PT) error) (T, error) {
	var zero T
	status, err := t.ParseStatus(rawStatus)
	if err != nil {
		return zero, err
	}

	now := t.Now()
	var rec T
	p := PT(&rec)
	p.Init(uuid.New(), ownerID, now)
	if fill != nil {
		if err := fill(p); err != nil {
			return zero, err
		}
	}
	p.SetStatus(status)
	p.SetStamps(t.Track.Stamp(workflow.Stamps{}, status, now))

	out, err := t.Store.Create(ctx, rec)
	if err != nil {
		return zero, err
	}
	t.Metrics.Created(t.Track.Name, string(status))
	t.Log.Debug("application created",
		zap.String("id", out.GetID().String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("status", string(status)))
	return out, nil
}

func (t *Tracker[T, PT]) Get(ctx context.Context, ownerID, id uuid.UUID) (T, error) {
	return t.Store.Get(ctx, ownerID, id)
}

func (t *Tracker[T, PT]) List(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]T, error) {
	return t.Store.List(ctx, ownerID, q)
}

// Update menerapkan apply (field non-status) lalu, jika status != nil, transisi status + stamps.
// Keduanya dalam satu Store.Update (atomik).
func (t *Tracker[T, PT]) Update(ctx context.Context, ownerID, id uuid.UUID, status *workflow.Status, apply func(PT) error) (T, error) {
	var zero T
	if status != nil {
		s, err := t.Track.Parse(string(*status))
		if err != nil {
			return zero, err
		}
		status = &s
	}

	var from workflow.Status
	out, err := t.Store.Update(ctx, ownerID, id, func(rec *T) error {
		p := PT(rec)
		now := t.Now()
		if apply != nil {
			if err := apply(p); err != nil {
				return err
			}
		}
		from = p.GetStatus()
		if status != nil {
			p.SetStatus(*status)
			p.SetStamps(t.Track.Stamp(p.GetStamps(), *status, now))
		}
		p.Touch(now)
		return nil
	})
	if err != nil {
		return zero, err
	}

	if status != nil && from != *status {
		t.Metrics.Transition(t.Track.Name, string(from), string(*status))
		t.Log.Debug("status changed",
			zap.String("id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(*status)))
	}
	return out, nil
}

// Mark adalah quick action: update status saja (plus apply opsional, mis. award_amount).
func (t *Tracker[T, PT]) Mark(ctx context.Context, ownerID, id uuid.UUID, status workflow.Status, apply func(PT) error) (T, error) {
	return t.Update(ctx, ownerID, id, &status, apply)
}

func (t *Tracker[T, PT]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := t.Store.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	t.Metrics.Deleted(t.Track.Name)
	return nil
}

// Overview meringkas semua aplikasi ownerID. days <= 0 → WindowDays.
func (t *Tracker[T, PT]) Overview(ctx context.Context, ownerID uuid.UUID, days int) (workflow.Overview[T], error) {
	items, err := t.Store.List(ctx, ownerID, store.ListQuery{SortBy: store.SortCreatedAt, Desc: true})
	if err != nil {
		return workflow.Overview[T]{}, err
	}
	if days <= 0 {
		days = t.WindowDays
	}
	return workflow.Summarize(t.Track, items, t.Now(), workflow.WindowFromDays(days)), nil
}
