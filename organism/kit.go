package organism

// Variant names a kit.
type Variant string

const (
	VariantFrogAndAlgae     Variant = "frog_and_algae"
	VariantDuckAndWaterLily Variant = "duck_and_water_lily"
)

// Kit is the pair of hooks a factory uses to populate a pond. Both hooks are
// bound where the kit is defined, so every organism a factory holds comes
// from a single kit.
type Kit struct {
	variant   Variant
	newAnimal func(label string) Animal
	newPlant  func(label string) Plant
}

// NewKit defines a kit. A nil hook is reported as ErrMissingHook when the kit
// is handed to New.
func NewKit(variant Variant, newAnimal func(label string) Animal, newPlant func(label string) Plant) Kit {
	return Kit{variant: variant, newAnimal: newAnimal, newPlant: newPlant}
}

func (k Kit) Variant() Variant { return k.variant }

var (
	// FrogAndAlgae populates ponds with frogs and algae.
	FrogAndAlgae = NewKit(VariantFrogAndAlgae,
		func(label string) Animal { return NewFrog(label) },
		func(label string) Plant { return NewAlgae(label) },
	)

	// DuckAndWaterLily populates ponds with ducks and water lilies.
	DuckAndWaterLily = NewKit(VariantDuckAndWaterLily,
		func(label string) Animal { return NewDuck(label) },
		func(label string) Plant { return NewWaterLily(label) },
	)
)
