package beverage

// Builder is everything a Director may call.
type Builder interface {
	AddWater(amount float64)
	AddMaterial(amount float64)
	Result() Beverage
}

// WaterWithMaterialBuilder owns one beverage for its whole life. It is not
// safe for concurrent use.
type WaterWithMaterialBuilder struct {
	beverage Beverage
}

// NewBuilder starts an empty beverage of the given kind
func NewBuilder(kind Kind) (*WaterWithMaterialBuilder, error) {
	b, err := New(kind)
	if err != nil {
		return nil, err
	}
	return &WaterWithMaterialBuilder{beverage: b}, nil
}

// NewSugarWaterBuilder starts an empty sugar water.
func NewSugarWaterBuilder() *WaterWithMaterialBuilder {
	return &WaterWithMaterialBuilder{beverage: &SugarWater{}}
}

// NewSaltWaterBuilder starts an empty salt water.
func NewSaltWaterBuilder() *WaterWithMaterialBuilder {
	return &WaterWithMaterialBuilder{beverage: &SaltWater{}}
}

// AddWater adds amount of water. Negative amounts take water away.
func (b *WaterWithMaterialBuilder) AddWater(amount float64) {
	b.beverage.AddWater(amount)
}

// AddMaterial adds sugar or salt, depending on the beverage kind.
func (b *WaterWithMaterialBuilder) AddMaterial(amount float64) {
	b.beverage.AddMaterial(amount)
}

// Result returns the beverage in its current state. The builder keeps
// ownership, so later calls keep mutating the same value.
func (b *WaterWithMaterialBuilder) Result() Beverage {
	return b.beverage
}
