package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoaderReadsYAMLFilesAsTopLevelKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pond.yaml", "variant: duck_and_water_lily\nanimals: 3\nplants: 2\n")
	writeFile(t, dir, "beverage.yml", "kind: salt_water\n")
	writeFile(t, dir, "notes.txt", "ignored")

	data, err := NewLoader(dir).Load()
	require.NoError(t, err)

	m := NewManager()
	m.Load(data)
	assert.Equal(t, "duck_and_water_lily", m.GetString("pond.variant"))
	assert.Equal(t, 3, m.GetInt("pond.animals"))
	assert.Equal(t, "salt_water", m.GetString("beverage.kind"))
	assert.False(t, m.Has("notes"))
}

func TestLoaderExpandsEnvironment(t *testing.T) {
	t.Setenv("CREATIONAL_POND_VARIANT", "duck_and_water_lily")
	dir := t.TempDir()
	writeFile(t, dir, "pond.yaml", "variant: \"${CREATIONAL_POND_VARIANT}\"\nschedule: \"${CREATIONAL_UNSET_SCHEDULE:@every 1m}\"\n")

	data, err := NewLoader(dir).Load()
	require.NoError(t, err)

	m := NewManager()
	m.Load(data)
	assert.Equal(t, "duck_and_water_lily", m.GetString("pond.variant"))
	assert.Equal(t, "@every 1m", m.GetString("pond.schedule"))
}

func TestLoaderMissingDirectory(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing")).Load()
	assert.ErrorContains(t, err, "does not exist")
}

func TestLoaderShippedConfig(t *testing.T) {
	data, err := NewLoader(".").Load()
	require.NoError(t, err)

	m := NewManager()
	m.Load(data)
	assert.Equal(t, 4, m.GetInt("pond.animals"))
	assert.Equal(t, "sqlite", m.GetString("database.connections.sqlite.driver"))
}
