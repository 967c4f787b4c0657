package store_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"scholartrack_backend/internals/features/tracking/scholarship_applications/model"
	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
)

// Butuh Postgres sungguhan: TEST_DATABASE_URL=postgres://... go test ./...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ScholarshipApplicationModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM scholarship_applications")
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newScholarshipRow(owner, target uuid.UUID, st workflow.Status, deadline *time.Time, created time.Time) model.ScholarshipApplicationModel {
	var m model.ScholarshipApplicationModel
	m.Init(uuid.New(), owner, created)
	m.ScholarshipApplicationScholarshipID = target
	m.SetStatus(st)
	m.ScholarshipApplicationDeadline = deadline
	return m
}

func TestGormStore(t *testing.T) {
	db := openTestDB(t)
	st := store.NewGormStore[model.ScholarshipApplicationModel](db, "scholarship application", model.Columns)
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()
	start := time.Now().UTC().Truncate(time.Second)
	d1, d2 := start.Add(48*time.Hour), start.Add(24*time.Hour)

	a, err := st.Create(ctx, newScholarshipRow(owner, uuid.New(), model.StatusInterested, &d1, start))
	require.NoError(t, err)
	b, err := st.Create(ctx, newScholarshipRow(owner, uuid.New(), model.StatusPlanning, nil, start.Add(time.Second)))
	require.NoError(t, err)
	c, err := st.Create(ctx, newScholarshipRow(owner, uuid.New(), model.StatusPlanning, &d2, start.Add(2*time.Second)))
	require.NoError(t, err)

	t.Run("duplicate pair", func(t *testing.T) {
		_, err := st.Create(ctx, newScholarshipRow(owner, a.ScholarshipApplicationScholarshipID, model.StatusInterested, nil, start))
		var ce *workflow.ConflictError
		assert.True(t, errors.As(err, &ce))
	})

	t.Run("owner scoping", func(t *testing.T) {
		_, err := st.Get(ctx, other, a.ScholarshipApplicationID)
		var nf *workflow.NotFoundError
		assert.True(t, errors.As(err, &nf))
		rows, err := st.List(ctx, other, store.ListQuery{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("list sort and filter", func(t *testing.T) {
		rows, err := st.List(ctx, owner, store.ListQuery{SortBy: store.SortDeadline})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []uuid.UUID{c.ScholarshipApplicationID, a.ScholarshipApplicationID, b.ScholarshipApplicationID},
			[]uuid.UUID{rows[0].ScholarshipApplicationID, rows[1].ScholarshipApplicationID, rows[2].ScholarshipApplicationID})

		planning := model.StatusPlanning
		rows, err = st.List(ctx, owner, store.ListQuery{Status: &planning, SortBy: store.SortCreatedAt, Desc: true})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, c.ScholarshipApplicationID, rows[0].ScholarshipApplicationID)
	})

	t.Run("update", func(t *testing.T) {
		out, err := st.Update(ctx, owner, a.ScholarshipApplicationID, func(m *model.ScholarshipApplicationModel) error {
			m.ScholarshipApplicationEssayCompleted = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, out.ScholarshipApplicationEssayCompleted)

		boom := errors.New("boom")
		_, err = st.Update(ctx, owner, a.ScholarshipApplicationID, func(m *model.ScholarshipApplicationModel) error {
			m.ScholarshipApplicationDocumentsReady = true
			return boom
		})
		assert.ErrorIs(t, err, boom)
		got, err := st.Get(ctx, owner, a.ScholarshipApplicationID)
		require.NoError(t, err)
		assert.False(t, got.ScholarshipApplicationDocumentsReady)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, st.Delete(ctx, owner, b.ScholarshipApplicationID))
		err := st.Delete(ctx, owner, b.ScholarshipApplicationID)
		var nf *workflow.NotFoundError
		assert.True(t, errors.As(err, &nf))
		assert.True(t, errors.As(st.Delete(ctx, other, a.ScholarshipApplicationID), &nf))
	})
}
