package scheduler

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/organism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixedHandler struct {
	spec string
	ran  *int
}

func (h fixedHandler) Handle() (string, func()) {
	return h.spec, func() { *h.ran++ }
}

func TestRunTasksAddsEntries(t *testing.T) {
	ran := 0
	s := New()
	s.Register("every-minute", fixedHandler{spec: "0 * * * * *", ran: &ran})

	require.NoError(t, s.RunTasks())
	assert.Len(t, s.Entries(), 1)
}

func TestRunTasksRejectsBadSpec(t *testing.T) {
	ran := 0
	s := New()
	s.Register("broken", fixedHandler{spec: "whenever", ran: &ran})

	assert.ErrorContains(t, s.RunTasks(), "broken")
}

func TestRestockRecordsPond(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "census.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	store := database.NewStore(db)

	r := NewRestock(store, "@every 1h", organism.VariantDuckAndWaterLily, 3, 2)
	spec, task := r.Handle()
	assert.Equal(t, "@every 1h", spec)

	task()
	task()

	ponds, err := store.ListPonds(0)
	require.NoError(t, err)
	require.Len(t, ponds, 2)
	assert.Equal(t, "duck_and_water_lily", ponds[0].Variant)
	assert.Equal(t, 3, ponds[0].Animals)
}

func TestRestockUnknownVariantRecordsNothing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "census.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	store := database.NewStore(db)

	NewRestock(store, "@every 1h", "shark_and_kelp", 1, 1).Run()

	ponds, err := store.ListPonds(0)
	require.NoError(t, err)
	assert.Empty(t, ponds)
}

func TestRestockWarnsWhenCensusIsUnavailable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "census.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	buf := &bytes.Buffer{}
	require.NoError(t, logger.SetOutput(buf))
	t.Cleanup(func() { _ = logger.SetOutput(io.Discard) })

	NewRestock(database.NewStore(db), "@every 1h", organism.VariantFrogAndAlgae, 1, 1).Run()

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "pond restock skipped")
}
