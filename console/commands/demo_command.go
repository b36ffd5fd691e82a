package commands

import (
	"github.com/galaplate/creational/beverage"
	"github.com/galaplate/creational/organism"
)

type DemoCommand struct {
	BaseCommand
}

func (c *DemoCommand) GetSignature() string {
	return "demo"
}

func (c *DemoCommand) GetDescription() string {
	return "Run both factory variants and cook both beverages"
}

func (c *DemoCommand) Execute(args []string) error {
	ponds := []struct {
		newFactory      func(int, int) (*organism.Factory, error)
		animals, plants int
	}{
		{organism.NewFrogAndAlgaeFactory, 4, 1},
		{organism.NewDuckAndWaterLilyFactory, 3, 2},
	}

	for _, p := range ponds {
		f, err := p.newFactory(p.animals, p.plants)
		if err != nil {
			return err
		}
		for _, a := range f.GetAnimals() {
			a.Eat(c.out())
		}
		for _, pl := range f.GetPlants() {
			pl.Grow(c.out())
		}
	}

	for _, builder := range []*beverage.WaterWithMaterialBuilder{
		beverage.NewSugarWaterBuilder(),
		beverage.NewSaltWaterBuilder(),
	} {
		beverage.NewDirector(builder).Cook()
		c.Printf("%v\n", builder.Result())
	}

	return nil
}
