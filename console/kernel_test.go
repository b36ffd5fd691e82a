package console

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/console/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKernel(t *testing.T) (*Kernel, *bytes.Buffer) {
	t.Helper()

	m := config.NewManager()
	m.Set("database.default", "sqlite")
	m.Set("database.connections.sqlite.driver", "sqlite")
	m.Set("database.connections.sqlite.database", filepath.Join(t.TempDir(), "census.sqlite"))
	prev := config.SetGlobal(m)
	t.Cleanup(func() { config.SetGlobal(prev) })

	out := &bytes.Buffer{}
	return NewKernel(out), out
}

func TestDemoPrintsBothFamilies(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"demo"}))

	assert.Equal(t, strings.Join([]string{
		"frog animal 0 is eating",
		"frog animal 1 is eating",
		"frog animal 2 is eating",
		"frog animal 3 is eating",
		"algae plant 0 is growing",
		"duck animal 0 is eating",
		"duck animal 1 is eating",
		"duck animal 2 is eating",
		"water lily plant 0 is growing",
		"water lily plant 1 is growing",
		"SugarWater{water=450, sugar=125}",
		"SaltWater{water=450, salt=125}",
	}, "\n")+"\n", out.String())
}

func TestPondCommand(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"pond", "duck_and_water_lily", "-animals", "1", "-plants", "2"}))

	assert.Equal(t, "duck animal 0 is eating\n"+
		"water lily plant 0 is growing\n"+
		"water lily plant 1 is growing\n", out.String())
}

func TestPondCommandUsesConfiguredDefaults(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"pond"}))

	assert.Equal(t, 4, strings.Count(out.String(), "frog"))
	assert.Equal(t, 1, strings.Count(out.String(), "algae"))
}

func TestPondCommandRejectsNegativeCount(t *testing.T) {
	k, _ := newTestKernel(t)

	err := k.Run([]string{"pond", "-animals", "-2"})
	assert.ErrorContains(t, err, "invalid count")
}

func TestPondCommandInteractive(t *testing.T) {
	k, out := newTestKernel(t)
	pond := k.commands["pond"].(*commands.PondCommand)
	pond.In = strings.NewReader("1\n")

	require.NoError(t, pond.Execute([]string{"-i", "-animals", "1", "-plants", "0"}))
	assert.Contains(t, out.String(), "duck animal 0 is eating")
}

func TestBrewCommand(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"brew", "salt_water", "-times", "2"}))

	assert.JSONEq(t, `{"water": 900, "salt": 250}`, out.String())
}

func TestBrewCommandUnknownKind(t *testing.T) {
	k, out := newTestKernel(t)

	err := k.Run([]string{"brew", "lemonade"})
	assert.ErrorContains(t, err, "unknown beverage kind")
	assert.Contains(t, out.String(), "❌ ")
}

func TestBrewCommandZeroTimesWarns(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"brew", "sugar_water", "-times", "0"}))

	assert.Contains(t, out.String(), "⚠️  Recipe not run")
	assert.Contains(t, out.String(), `"water": 0`)
}

func TestRecordAndCensus(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"pond", "frog_and_algae", "-record"}))
	assert.Contains(t, out.String(), "Pond recorded")

	require.NoError(t, k.Run([]string{"brew", "sugar_water", "-record"}))
	assert.Contains(t, out.String(), "Beverage recorded")

	out.Reset()
	require.NoError(t, k.Run([]string{"census"}))
	assert.Contains(t, out.String(), "frog_and_algae")
	assert.Contains(t, out.String(), "sugar_water")
}

func TestCensusEmpty(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run([]string{"census"}))
	assert.Contains(t, out.String(), "Census is empty")
}

func TestListIsDefault(t *testing.T) {
	k, out := newTestKernel(t)

	require.NoError(t, k.Run(nil))
	for _, sig := range []string{"demo", "pond", "brew", "census", "serve", "list"} {
		assert.Contains(t, out.String(), sig)
	}
}

func TestUnknownCommand(t *testing.T) {
	k, out := newTestKernel(t)

	assert.ErrorContains(t, k.Run([]string{"fly"}), "command not found: fly")
	assert.Equal(t, "❌ command not found: fly\n", out.String())
}
