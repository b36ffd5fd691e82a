package database

import (
	"path/filepath"
	"testing"

	"github.com/galaplate/creational/beverage"
	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/organism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	m := config.NewManager()
	m.Set("database.default", "sqlite")
	m.Set("database.connections.sqlite.driver", "sqlite")
	m.Set("database.connections.sqlite.database", filepath.Join(t.TempDir(), "census.sqlite"))

	db, err := Open(m, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewStore(db)
}

func TestRecordAndFindPond(t *testing.T) {
	store := openTestStore(t)

	f, err := organism.NewDuckAndWaterLilyFactory(3, 2)
	require.NoError(t, err)

	pond, err := store.RecordPond(f)
	require.NoError(t, err)
	assert.Len(t, pond.ID, 36)

	found, err := store.FindPond(pond.ID)
	require.NoError(t, err)
	assert.Equal(t, "duck_and_water_lily", found.Variant)
	assert.Equal(t, 3, found.Animals)
	assert.Equal(t, 2, found.Plants)

	require.Len(t, found.Organisms, 5)
	assert.Equal(t, OrganismRecord{ID: found.Organisms[0].ID, PondID: pond.ID, Role: RoleAnimal, Position: 0, Species: "duck", Label: "animal 0"}, found.Organisms[0])
	assert.Equal(t, "animal 2", found.Organisms[2].Label)
	assert.Equal(t, RolePlant, found.Organisms[3].Role)
	assert.Equal(t, "water lily", found.Organisms[4].Species)
	assert.Equal(t, "plant 1", found.Organisms[4].Label)
}

func TestFindPondNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.FindPond("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPonds(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		f, err := organism.NewFrogAndAlgaeFactory(1, 1)
		require.NoError(t, err)
		_, err = store.RecordPond(f)
		require.NoError(t, err)
	}

	ponds, err := store.ListPonds(0)
	require.NoError(t, err)
	assert.Len(t, ponds, 3)

	ponds, err = store.ListPonds(2)
	require.NoError(t, err)
	assert.Len(t, ponds, 2)
}

func TestRecordBeverage(t *testing.T) {
	store := openTestStore(t)

	b := beverage.NewSaltWaterBuilder()
	beverage.NewDirector(b).Cook()

	rec, err := store.RecordBeverage(b.Result(), 1)
	require.NoError(t, err)
	assert.Equal(t, "salt_water", rec.Kind)

	all, err := store.ListBeverages(10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 450.0, all[0].Water)
	assert.Equal(t, 125.0, all[0].Material)
	assert.Equal(t, 1, all[0].Cooks)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	m := config.NewManager()
	m.Set("database.default", "oracle")

	_, err := Open(m, nil)
	assert.ErrorContains(t, err, "unsupported database driver")
}
