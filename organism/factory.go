package organism

import (
	"fmt"

	"github.com/galaplate/creational/factory"
	"github.com/galaplate/creational/logger"
)

// Factory holds the animals and plants created from one kit. It is populated
// once by New and never mutated afterwards.
type Factory struct {
	variant Variant
	animals []Animal
	plants  []Plant
}

// New creates numberAnimals animals and numberPlants plants with the kit's
// hooks. Labels are "animal <i>" and "plant <i>", zero-based.
func New(kit Kit, numberAnimals, numberPlants int) (*Factory, error) {
	if kit.newAnimal == nil {
		return nil, fmt.Errorf("kit %q: %w: new animal", kit.variant, ErrMissingHook)
	}
	if kit.newPlant == nil {
		return nil, fmt.Errorf("kit %q: %w: new plant", kit.variant, ErrMissingHook)
	}
	if numberAnimals < 0 {
		return nil, fmt.Errorf("%w: number of animals %d", ErrInvalidCount, numberAnimals)
	}
	if numberPlants < 0 {
		return nil, fmt.Errorf("%w: number of plants %d", ErrInvalidCount, numberPlants)
	}

	animals, err := factory.NewBaseFactory(func(seq int64) Animal {
		return kit.newAnimal(fmt.Sprintf("animal %d", seq))
	}).BuildMany(numberAnimals)
	if err != nil {
		return nil, err
	}

	plants, err := factory.NewBaseFactory(func(seq int64) Plant {
		return kit.newPlant(fmt.Sprintf("plant %d", seq))
	}).BuildMany(numberPlants)
	if err != nil {
		return nil, err
	}

	logger.Debug("pond populated", map[string]any{
		"variant": string(kit.variant),
		"animals": numberAnimals,
		"plants":  numberPlants,
	})

	return &Factory{variant: kit.variant, animals: animals, plants: plants}, nil
}

// NewFrogAndAlgaeFactory fills a pond with frogs and algae.
func NewFrogAndAlgaeFactory(numberAnimals, numberPlants int) (*Factory, error) {
	return New(FrogAndAlgae, numberAnimals, numberPlants)
}

// NewDuckAndWaterLilyFactory fills a pond with ducks and water lilies.
func NewDuckAndWaterLilyFactory(numberAnimals, numberPlants int) (*Factory, error) {
	return New(DuckAndWaterLily, numberAnimals, numberPlants)
}

// Variant returns the name of the kit the factory was built from.
func (f *Factory) Variant() Variant {
	return f.variant
}

// GetAnimals returns a copy of the animals in creation order
func (f *Factory) GetAnimals() []Animal {
	return append([]Animal(nil), f.animals...)
}

// GetPlants returns a copy of the plants in creation order
func (f *Factory) GetPlants() []Plant {
	return append([]Plant(nil), f.plants...)
}
