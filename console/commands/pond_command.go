package commands

import (
	"github.com/galaplate/creational/organism"
)

type PondCommand struct {
	BaseCommand
}

func (c *PondCommand) GetSignature() string {
	return "pond"
}

func (c *PondCommand) GetDescription() string {
	return "Populate a pond from a variant and let every organism eat or grow"
}

func (c *PondCommand) Execute(args []string) error {
	settings := c.Settings()
	variant, rest := c.SplitPositional(args)

	fs := c.NewFlagSet(c.GetSignature())
	animals := fs.Int("animals", settings.PondAnimals, "number of animals")
	plants := fs.Int("plants", settings.PondPlants, "number of plants")
	record := fs.Bool("record", false, "record the pond in the census")
	interactive := fs.Bool("i", false, "choose the variant interactively")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	if *interactive && variant == "" {
		variants := organism.Default().Variants()
		choices := make([]string, len(variants))
		for i, v := range variants {
			choices[i] = string(v)
		}
		variant = c.AskChoice("Which pond?", choices, 0)
	}

	f, err := organism.NewByVariant(organism.Variant(variant), *animals, *plants)
	if err != nil {
		return err
	}

	for _, a := range f.GetAnimals() {
		a.Eat(c.out())
	}
	for _, p := range f.GetPlants() {
		p.Grow(c.out())
	}

	if !*record {
		return nil
	}

	store, closeStore, err := c.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	pond, err := store.RecordPond(f)
	if err != nil {
		return err
	}
	c.PrintSuccess("Pond recorded: " + pond.ID)
	return nil
}
