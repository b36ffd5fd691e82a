package scheduler

import (
	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/organism"
)

// Restock records a freshly populated pond on every tick.
type Restock struct {
	store   *database.Store
	spec    string
	variant organism.Variant
	animals int
	plants  int
}

func NewRestock(store *database.Store, spec string, variant organism.Variant, animals, plants int) *Restock {
	return &Restock{store: store, spec: spec, variant: variant, animals: animals, plants: plants}
}

func (r *Restock) Handle() (string, func()) {
	return r.spec, r.Run
}

// Run builds and records one pond. A pond that cannot be built is an error
// in the configuration; a census write that fails is skipped with a warning
// and the next tick tries again.
func (r *Restock) Run() {
	f, err := organism.NewByVariant(r.variant, r.animals, r.plants)
	if err != nil {
		logger.Error("pond restock failed", map[string]any{"variant": string(r.variant), "error": err.Error()})
		return
	}
	if _, err := r.store.RecordPond(f); err != nil {
		logger.Warn("pond restock skipped", map[string]any{"variant": string(r.variant), "error": err.Error()})
	}
}
