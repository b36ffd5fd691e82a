package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReadsProcessEnvironment(t *testing.T) {
	t.Setenv("CREATIONAL_TEST_VALUE", "frog")
	assert.Equal(t, "frog", Get("CREATIONAL_TEST_VALUE"))
}

func TestGetOrFallsBack(t *testing.T) {
	t.Setenv("CREATIONAL_TEST_EMPTY", "")
	assert.Equal(t, "duck", GetOr("CREATIONAL_TEST_EMPTY", "duck"))
	assert.Equal(t, "duck", GetOr("CREATIONAL_TEST_NEVER_SET", "duck"))
}

func TestLoadReadsFilesPassedAfterImplicitLoad(t *testing.T) {
	Get("CREATIONAL_TEST_TRIGGER_DEFAULT_LOAD")

	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("CREATIONAL_TEST_FIRST=algae\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("CREATIONAL_TEST_SECOND=\"water lily\"\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("CREATIONAL_TEST_FIRST")
		os.Unsetenv("CREATIONAL_TEST_SECOND")
	})

	Load(first)
	Load(second)

	assert.Equal(t, "algae", Get("CREATIONAL_TEST_FIRST"))
	assert.Equal(t, "water lily", Get("CREATIONAL_TEST_SECOND"))
}

func TestLoadKeepsProcessEnvironment(t *testing.T) {
	t.Setenv("CREATIONAL_TEST_KEPT", "frog")
	file := filepath.Join(t.TempDir(), "override.env")
	require.NoError(t, os.WriteFile(file, []byte("CREATIONAL_TEST_KEPT=duck\n"), 0644))

	Load(file)

	assert.Equal(t, "frog", Get("CREATIONAL_TEST_KEPT"))
}
