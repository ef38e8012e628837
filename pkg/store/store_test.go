package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()
	dv, err := Open(Options{Backend: BackendDiskv, Path: t.TempDir()})
	require.NoError(t, err)
	sq, err := Open(Options{Backend: BackendSQLite, Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Storage{
		"diskv":  dv,
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestStorageRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write(KeyNotes, []byte(`[{"id":"a"}]`)))
			got, err := s.Read(KeyNotes)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"a"}]`, string(got))

			require.NoError(t, s.Write(KeyNotes, []byte(`[]`)))
			got, err = s.Read(KeyNotes)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestStorageMissingKey(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Read(KeyTheme)
			assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
			assert.NoError(t, s.Erase(KeyTheme))
		})
	}
}

func TestStorageKeysAndErase(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write(KeyTasks, []byte(`[]`)))
			require.NoError(t, s.Write(KeyHabits, []byte(`[]`)))
			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{KeyHabits, KeyTasks}, keys)

			require.NoError(t, s.Erase(KeyTasks))
			_, err = s.Read(KeyTasks)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Write(KeyPIN, []byte("hash")))
	require.NoError(t, s.Close())

	s, err = NewSQLite(dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Read(KeyPIN)
	require.NoError(t, err)
	assert.Equal(t, "hash", string(got))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "etcd", Path: t.TempDir()})
	assert.Error(t, err)
}
