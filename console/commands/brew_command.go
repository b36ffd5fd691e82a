package commands

import (
	"fmt"

	"github.com/galaplate/creational/beverage"
	"github.com/galaplate/creational/supports"
)

type BrewCommand struct {
	BaseCommand
}

func (c *BrewCommand) GetSignature() string {
	return "brew"
}

func (c *BrewCommand) GetDescription() string {
	return "Cook sugar water or salt water with the fixed recipe"
}

func (c *BrewCommand) Execute(args []string) error {
	kind, rest := c.SplitPositional(args)
	if kind == "" {
		kind = c.Settings().BeverageKind
	}

	fs := c.NewFlagSet(c.GetSignature())
	times := fs.Int("times", 1, "how many times to run the recipe")
	record := fs.Bool("record", false, "record the beverage in the census")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if *times < 0 {
		return fmt.Errorf("times must not be negative: %d", *times)
	}

	builder, err := beverage.NewBuilder(beverage.Kind(kind))
	if err != nil {
		return err
	}

	if *times == 0 {
		c.PrintWarning("Recipe not run, the beverage is empty")
	}
	director := beverage.NewDirector(builder)
	for i := 0; i < *times; i++ {
		director.Cook()
	}

	result := builder.Result()
	supports.Dump(c.out(), result)

	if !*record {
		return nil
	}

	store, closeStore, err := c.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	rec, err := store.RecordBeverage(result, *times)
	if err != nil {
		return err
	}
	c.PrintSuccess("Beverage recorded: " + rec.ID)
	return nil
}
