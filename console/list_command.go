package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/galaplate/creational/console/commands"
)

type ListCommand struct {
	commands.BaseCommand
	kernel *Kernel
}

func (c *ListCommand) GetSignature() string {
	return "list"
}

func (c *ListCommand) GetDescription() string {
	return "List available commands"
}

func (c *ListCommand) Execute(args []string) error {
	w := tabwriter.NewWriter(c.kernel.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Available commands:")
	for _, cmd := range c.kernel.Commands() {
		fmt.Fprintf(w, "  %s\t%s\n", cmd.GetSignature(), cmd.GetDescription())
	}
	return w.Flush()
}
