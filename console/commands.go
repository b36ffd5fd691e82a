package console

import "github.com/galaplate/creational/console/commands"

// RegisterCommands registers all available console commands
func (k *Kernel) RegisterCommands() {
	base := commands.BaseCommand{Out: k.out}

	k.Register(&commands.DemoCommand{BaseCommand: base})
	k.Register(&commands.PondCommand{BaseCommand: base})
	k.Register(&commands.BrewCommand{BaseCommand: base})
	k.Register(&commands.CensusCommand{BaseCommand: base})
	k.Register(&commands.ServeCommand{BaseCommand: base})

	k.Register(&ListCommand{BaseCommand: base, kernel: k})
}
