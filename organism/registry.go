package organism

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps variant names to kits
type Registry struct {
	mu             sync.RWMutex
	defaultVariant Variant
	kits           map[Variant]Kit
}

var defaultRegistry = NewRegistry(VariantFrogAndAlgae, FrogAndAlgae, DuckAndWaterLily)

// NewRegistry creates a Registry holding kits, with defaultVariant selected by
// GetDefaultKit.
func NewRegistry(defaultVariant Variant, kits ...Kit) *Registry {
	r := &Registry{
		defaultVariant: defaultVariant,
		kits:           make(map[Variant]Kit, len(kits)),
	}
	for _, kit := range kits {
		r.kits[kit.variant] = kit
	}
	return r
}

// RegisterKit adds or replaces the kit under its variant name
func (r *Registry) RegisterKit(kit Kit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kits[kit.variant] = kit
}

// GetKit returns a kit by variant name
func (r *Registry) GetKit(variant Variant) (Kit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if kit, exists := r.kits[variant]; exists {
		return kit, nil
	}
	return Kit{}, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
}

// GetDefaultKit returns the kit of the default variant
func (r *Registry) GetDefaultKit() (Kit, error) {
	r.mu.RLock()
	variant := r.defaultVariant
	r.mu.RUnlock()
	return r.GetKit(variant)
}

// SetDefaultVariant changes the default; the variant must already be registered
func (r *Registry) SetDefaultVariant(variant Variant) error {
	if _, err := r.GetKit(variant); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultVariant = variant
	return nil
}

// Variants lists registered variant names in sorted order
func (r *Registry) Variants() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Variant, 0, len(r.kits))
	for v := range r.kits {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether a kit is registered under variant
func (r *Registry) Has(variant Variant) bool {
	_, err := r.GetKit(variant)
	return err == nil
}

// New builds a factory from the kit registered under variant. An empty variant
// selects the default.
func (r *Registry) New(variant Variant, numberAnimals, numberPlants int) (*Factory, error) {
	var (
		kit Kit
		err error
	)
	if variant == "" {
		kit, err = r.GetDefaultKit()
	} else {
		kit, err = r.GetKit(variant)
	}
	if err != nil {
		return nil, err
	}
	return New(kit, numberAnimals, numberPlants)
}

// Default returns the package registry holding the built-in kits
func Default() *Registry {
	return defaultRegistry
}

// NewByVariant builds a factory through the package registry
func NewByVariant(variant Variant, numberAnimals, numberPlants int) (*Factory, error) {
	return defaultRegistry.New(variant, numberAnimals, numberPlants)
}
