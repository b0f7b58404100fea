package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManagerRoundTrip(t *testing.T) {
	fm := NewFileManager(t.TempDir())

	data := map[string]any{"name": "demo", "nested": map[string]any{"n": 1.0}}
	require.NoError(t, fm.WriteJSON("sub/config.json", data))

	got, err := fm.ReadJSON("sub/config.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadJSON_Missing(t *testing.T) {
	fm := NewFileManager(t.TempDir())
	_, err := fm.ReadJSON("nope.json")
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestReadJSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{nope"), 0o644))

	fm := NewFileManager(dir)
	_, err := fm.ReadJSON("bad.json")
	require.Error(t, err)
	assert.False(t, IsNotExist(err))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	fm := NewFileManager(dir)

	all, err := fm.ListFiles("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json", "c.txt"}, all)

	jsonOnly, err := fm.ListFiles(".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, jsonOnly)

	none, err := NewFileManager(filepath.Join(dir, "ghost")).ListFiles("")
	require.NoError(t, err)
	assert.Empty(t, none)
}
