package console

import (
	"fmt"
	"io"
	"os"

	"github.com/galaplate/creational/console/commands"
	"github.com/galaplate/creational/logger"
)

// Kernel dispatches console arguments to registered commands
type Kernel struct {
	commands map[string]commands.Command
	order    []string
	out      io.Writer
	printer  commands.BaseCommand
}

// NewKernel creates a kernel with every built-in command registered. Output
// goes to out, or stdout when out is nil.
func NewKernel(out io.Writer) *Kernel {
	if out == nil {
		out = os.Stdout
	}
	k := &Kernel{
		commands: make(map[string]commands.Command),
		out:      out,
		printer:  commands.BaseCommand{Out: out},
	}
	k.RegisterCommands()
	return k
}

// Register adds a command under its signature
func (k *Kernel) Register(cmd commands.Command) {
	sig := cmd.GetSignature()
	if _, exists := k.commands[sig]; !exists {
		k.order = append(k.order, sig)
	}
	k.commands[sig] = cmd
}

// Commands returns registered commands in registration order
func (k *Kernel) Commands() []commands.Command {
	out := make([]commands.Command, 0, len(k.order))
	for _, sig := range k.order {
		out = append(out, k.commands[sig])
	}
	return out
}

// Run executes the command named by args[0]; no arguments lists commands.
// Failures are printed to the kernel output and returned.
func (k *Kernel) Run(args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmd, exists := k.commands[args[0]]
	if !exists {
		err := fmt.Errorf("command not found: %s", args[0])
		k.printer.PrintError(err.Error())
		return err
	}

	logger.Debug("running command", map[string]any{"command": args[0], "args": args[1:]})
	if err := cmd.Execute(args[1:]); err != nil {
		logger.Error("command failed", map[string]any{"command": args[0], "error": err.Error()})
		k.printer.PrintError(err.Error())
		return err
	}
	return nil
}
