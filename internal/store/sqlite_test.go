package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSQLiteStore_SaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.SaveAnalysis(ctx, "resume.pdf", "Python engineer role", 72.5)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	records, err := s.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "resume.pdf", rec.Filename)
	assert.Equal(t, "Python engineer role", rec.JobDescription)
	assert.Equal(t, 72.5, rec.Score)
	assert.WithinDuration(t, time.Now().UTC(), rec.CreatedAt, time.Minute)
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SaveAnalysis(ctx, "first.pdf", "job", 10)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.SaveAnalysis(ctx, "second.pdf", "job", 20)
	require.NoError(t, err)

	records, err := s.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second.pdf", records[0].Filename)
	assert.Equal(t, "first.pdf", records[1].Filename)
}

func TestSQLiteStore_ListRespectsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.SaveAnalysis(ctx, "resume.pdf", "job", float64(i))
		require.NoError(t, err)
	}

	records, err := s.ListAnalyses(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSQLiteStore_EmptyList(t *testing.T) {
	s := openTestStore(t)

	records, err := s.ListAnalyses(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_SchemaInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	_, err = s.SaveAnalysis(ctx, "resume.pdf", "job", 55)
	require.NoError(t, err)
	s.Close()

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
