package beverage

import (
	"fmt"

	"github.com/galaplate/creational/logger"
)

// Ingredient is what a recipe step adds.
type Ingredient string

const (
	IngredientWater    Ingredient = "water"
	IngredientMaterial Ingredient = "material"
)

// Step is one builder call in a recipe.
type Step struct {
	Ingredient Ingredient `json:"ingredient"`
	Amount     float64    `json:"amount"`
}

func (s Step) String() string {
	return fmt.Sprintf("add %g %s", s.Amount, s.Ingredient)
}

var recipe = []Step{
	{IngredientWater, 150},
	{IngredientMaterial, 90},
	{IngredientWater, 300},
	{IngredientMaterial, 35},
}

// Recipe returns a copy of the steps Cook performs.
func Recipe() []Step {
	return append([]Step(nil), recipe...)
}

// Director drives a builder through the recipe. It holds the builder but
// does not own it.
type Director struct {
	builder Builder
}

// NewDirector returns a director that drives builder.
func NewDirector(builder Builder) *Director {
	return &Director{builder: builder}
}

// Cook applies every recipe step to the builder in order. Steps add to the
// current state, so cooking twice doubles the amounts.
func (d *Director) Cook() {
	for _, step := range recipe {
		switch step.Ingredient {
		case IngredientWater:
			d.builder.AddWater(step.Amount)
		case IngredientMaterial:
			d.builder.AddMaterial(step.Amount)
		}
	}

	logger.Debug("recipe applied", map[string]any{"steps": len(recipe)})
}
