package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, cleanup, err := NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return s
}

func TestContentSource_MatchesBuiltInCatalog(t *testing.T) {
	src := NewContentSource(setupTestStorage(t))

	got, err := src.Catalog(context.Background())
	require.NoError(t, err)

	want := content.Default()
	assert.Len(t, got.Events, len(want.Events))
	assert.Len(t, got.News, len(want.News))
	assert.Len(t, got.Clubs, len(want.Clubs))
	assert.Len(t, got.Sports, len(want.Sports))
	assert.Len(t, got.Leaders, len(want.Leaders))
	assert.Len(t, got.Calendar, len(want.Calendar))

	e, err := got.EventByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Annual Science Fair", e.Title)
	assert.True(t, e.Date.Equal(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Dr. Sarah Mitchell", got.Leaders[0].Name)
	assert.Equal(t, "3", got.News[0].ID, "news newest first")
}

func TestContentSource_ReadsFreshRows(t *testing.T) {
	s := setupTestStorage(t)
	src := NewContentSource(s)
	ctx := context.Background()

	require.NoError(t, s.Queries.CreateEvent(ctx, db.CreateEventParams{
		ID:        "open-day",
		Title:     "Open Day",
		EventDate: "2025-11-08",
	}))

	c, err := src.Catalog(ctx)
	require.NoError(t, err)
	e, err := c.EventByID("open-day")
	require.NoError(t, err)
	assert.Equal(t, time.November, e.Date.Month())
}

func TestContentSource_InvalidDate(t *testing.T) {
	s := setupTestStorage(t)
	require.NoError(t, s.Queries.CreateEvent(context.Background(), db.CreateEventParams{
		ID:        "bad",
		Title:     "Bad",
		EventDate: "next tuesday",
	}))

	_, err := NewContentSource(s).Catalog(context.Background())
	assert.ErrorContains(t, err, "event bad")
}

func TestRollback_DiscardsWrites(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	err := s.Rollback(ctx, func(q *db.Queries) error {
		return q.CreateEvent(ctx, db.CreateEventParams{
			ID: "tmp", Title: "Temporary", EventDate: "2025-01-01",
		})
	})
	require.NoError(t, err)

	c, err := NewContentSource(s).Catalog(ctx)
	require.NoError(t, err)
	_, err = c.EventByID("tmp")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestInTx_Commits(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	err := s.InTx(ctx, func(q *db.Queries) error {
		return q.CreateEvent(ctx, db.CreateEventParams{
			ID: "kept", Title: "Kept", EventDate: "2025-06-01",
		})
	})
	require.NoError(t, err)

	c, err := NewContentSource(s).Catalog(ctx)
	require.NoError(t, err)
	_, err = c.EventByID("kept")
	assert.NoError(t, err)
}

func TestInTx_ErrorRollsBack(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.InTx(ctx, func(q *db.Queries) error {
		if err := q.CreateEvent(ctx, db.CreateEventParams{ID: "gone", Title: "Gone", EventDate: "2025-06-01"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c, err := NewContentSource(s).Catalog(ctx)
	require.NoError(t, err)
	_, err = c.EventByID("gone")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "academy.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))

	c, err := NewContentSource(s).Catalog(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Events)

	// migrations are idempotent on reopen
	require.NoError(t, s.Close())
	s2, err := New(path)
	require.NoError(t, err)
	assert.NoError(t, s2.Close())
}
