package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("jobhunter_state_v1", `{"tasks":[]}`))

	// A fresh store over the same directory sees the persisted value.
	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	v, ok := s2.Get("jobhunter_state_v1")
	require.True(t, ok)
	assert.Equal(t, `{"tasks":[]}`, v)
}

func TestFileStore_DeleteRemovesKey(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Delete("k"))

	_, ok := s.Get("k")
	assert.False(t, ok)

	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	_, ok = s2.Get("k")
	assert.False(t, ok)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o644))

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	_, ok := s.Get("anything")
	assert.False(t, ok)
}
