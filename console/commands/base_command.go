package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/database"
)

// Command is one console command.
type Command interface {
	GetSignature() string
	GetDescription() string
	Execute(args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Out io.Writer
	In  io.Reader
}

func (b *BaseCommand) out() io.Writer {
	if b.Out == nil {
		return os.Stdout
	}
	return b.Out
}

func (b *BaseCommand) in() io.Reader {
	if b.In == nil {
		return os.Stdin
	}
	return b.In
}

func (b *BaseCommand) Printf(format string, a ...any) {
	fmt.Fprintf(b.out(), format, a...)
}

// Settings returns the typed view of the global configuration
func (b *BaseCommand) Settings() config.Settings {
	return config.SettingsFrom(config.GetGlobal())
}

// OpenStore connects to the configured census database
func (b *BaseCommand) OpenStore() (*database.Store, func(), error) {
	db, err := database.New(database.WithLogLevel("error"))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return database.NewStore(db), closeFn, nil
}

// SplitPositional separates a leading positional argument from flags so that
// both "pond duck_and_water_lily -animals 3" and "pond -animals 3" parse.
func (b *BaseCommand) SplitPositional(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// NewFlagSet creates a flag set that reports errors instead of exiting
func (b *BaseCommand) NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(b.out())
	return fs
}

// AskChoice prompts user to choose from a list of options
func (b *BaseCommand) AskChoice(prompt string, choices []string, defaultIndex int) string {
	fmt.Fprintf(b.out(), "%s\n", prompt)
	for i, choice := range choices {
		marker := " "
		if i == defaultIndex {
			marker = "*"
		}
		fmt.Fprintf(b.out(), "  %s %d) %s\n", marker, i+1, choice)
	}

	scanner := bufio.NewScanner(b.in())
	for {
		fmt.Fprintf(b.out(), "Choose [1-%d] (default: %d): ", len(choices), defaultIndex+1)
		if !scanner.Scan() {
			return choices[defaultIndex]
		}
		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			return choices[defaultIndex]
		}

		if index, err := strconv.Atoi(input); err == nil {
			if index >= 1 && index <= len(choices) {
				return choices[index-1]
			}
		}

		fmt.Fprintf(b.out(), "❌ Please choose a number between 1 and %d\n", len(choices))
	}
}

// PrintSuccess prints a success message with checkmark
func (b *BaseCommand) PrintSuccess(message string) {
	fmt.Fprintf(b.out(), "✅ %s\n", message)
}

// PrintError prints an error message with X mark
func (b *BaseCommand) PrintError(message string) {
	fmt.Fprintf(b.out(), "❌ %s\n", message)
}

// PrintWarning prints a warning message with warning symbol
func (b *BaseCommand) PrintWarning(message string) {
	fmt.Fprintf(b.out(), "⚠️  %s\n", message)
}

// PrintInfo prints an info message with info symbol
func (b *BaseCommand) PrintInfo(message string) {
	fmt.Fprintf(b.out(), "ℹ️  %s\n", message)
}
