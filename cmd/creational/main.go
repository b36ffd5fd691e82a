package main

import (
	"os"

	"github.com/galaplate/creational/bootstrap"
	"github.com/galaplate/creational/console"
	"github.com/galaplate/creational/env"
	"github.com/galaplate/creational/logger"
)

func main() {
	if _, err := bootstrap.Boot(env.GetOr("CONFIG_PATH", "./config")); err != nil {
		logger.Fatal("failed to boot", map[string]any{"error": err.Error()})
	}

	if err := console.NewKernel(os.Stdout).Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
