package confstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s := New(t.TempDir(), "config.json")

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "http://localhost:8080", s.GetString("api.base_url", ""))
}

func TestSetAndGetNestedKeys(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "config.json")

	require.NoError(t, s.Set("api.base_url", "http://example.com:9000"))
	require.NoError(t, s.Set("new.deeply.nested", "value"))

	// A fresh store reads the persisted file.
	s2 := New(dir, "config.json")
	assert.Equal(t, "http://example.com:9000", s2.GetString("api.base_url", ""))
	assert.Equal(t, "value", s2.GetString("new.deeply.nested", ""))
}

func TestGet_MissingPathFallsBack(t *testing.T) {
	s := New(t.TempDir(), "config.json")

	assert.Equal(t, "fallback", s.GetString("does.not.exist", "fallback"))
	// Path through a scalar also falls back.
	assert.Equal(t, "fallback", s.GetString("api.base_url.deeper", "fallback"))
}

func TestSet_ThroughScalarFails(t *testing.T) {
	s := New(t.TempDir(), "config.json")
	require.NoError(t, s.Set("api.base_url", "http://example.com"))

	err := s.Set("api.base_url.port", 8080)
	assert.Error(t, err)
}
