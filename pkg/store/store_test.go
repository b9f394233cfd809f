package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Get("athena_scenes")
	assert.False(t, ok)

	require.NoError(t, s.Set("athena_scenes", `[{"id":1}]`))
	v, ok := s.Get("athena_scenes")
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)
}

func TestFileStoreKeysIndependent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("athena_notes", "a"))
	require.NoError(t, s.Set("athena_research", "b"))

	v, _ := s.Get("athena_notes")
	assert.Equal(t, "a", v)
	v, _ = s.Get("athena_research")
	assert.Equal(t, "b", v)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	_, ok := s.Get("x")
	assert.False(t, ok)
	require.NoError(t, s.Set("x", "y"))
	v, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "y", v)
}
