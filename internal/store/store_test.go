package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "fintrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	_, err := kv.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound), "Get on missing key = %v, want ErrNotFound", err)

	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "3"))

	v, err := kv.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	require.NoError(t, kv.Delete("a", "b", "never-written"))
	_, err = kv.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = kv.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, kv.Delete("a"))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestSQLiteKV(t *testing.T) {
	exerciseKV(t, openTemp(t))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("financeTracker_theme", "dark"))
	require.NoError(t, s.Close())

	// Reopening runs migrations again, which must be a no-op.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get("financeTracker_theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"financeTracker_theme"}, keys)
}
