package organism

import (
	"fmt"
	"io"
)

// Species names an organism type.
type Species string

const (
	SpeciesDuck      Species = "duck"
	SpeciesFrog      Species = "frog"
	SpeciesAlgae     Species = "algae"
	SpeciesWaterLily Species = "water lily"
)

// Organism is anything living in a pond. The label is fixed at creation.
type Organism interface {
	Species() Species
	Label() string
}

// Animal is an organism that eats.
type Animal interface {
	Organism
	Eat(w io.Writer)
}

// Plant is an organism that grows.
type Plant interface {
	Organism
	Grow(w io.Writer)
}

type organism struct {
	species Species
	label   string
}

func (o organism) Species() Species { return o.species }
func (o organism) Label() string    { return o.label }

func (o organism) act(w io.Writer, action string) {
	fmt.Fprintf(w, "%s %s is %s\n", o.species, o.label, action)
}

type Duck struct{ organism }

func NewDuck(label string) *Duck {
	return &Duck{organism{species: SpeciesDuck, label: label}}
}

func (d *Duck) Eat(w io.Writer) { d.act(w, "eating") }

type Frog struct{ organism }

func NewFrog(label string) *Frog {
	return &Frog{organism{species: SpeciesFrog, label: label}}
}

func (f *Frog) Eat(w io.Writer) { f.act(w, "eating") }

type Algae struct{ organism }

func NewAlgae(label string) *Algae {
	return &Algae{organism{species: SpeciesAlgae, label: label}}
}

func (a *Algae) Grow(w io.Writer) { a.act(w, "growing") }

type WaterLily struct{ organism }

func NewWaterLily(label string) *WaterLily {
	return &WaterLily{organism{species: SpeciesWaterLily, label: label}}
}

func (l *WaterLily) Grow(w io.Writer) { l.act(w, "growing") }
