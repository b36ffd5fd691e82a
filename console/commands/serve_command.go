package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/galaplate/creational/bootstrap"
	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/logger"
)

type ServeCommand struct {
	BaseCommand
}

func (c *ServeCommand) GetSignature() string {
	return "serve"
}

func (c *ServeCommand) GetDescription() string {
	return "Serve ponds and beverages over HTTP"
}

func (c *ServeCommand) Execute(args []string) error {
	settings := c.Settings()

	fs := c.NewFlagSet(c.GetSignature())
	addr := fs.String("addr", settings.ServerAddr, "listen address")
	noCensus := fs.Bool("no-census", false, "serve without recording to the census")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var store *database.Store
	if !*noCensus {
		s, closeStore, err := c.OpenStore()
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
	} else {
		c.PrintWarning("Census disabled, recording routes answer 503")
	}

	app, sch, err := bootstrap.NewApp(func(ac *bootstrap.AppConfig) {
		ac.Store = store
	})
	if err != nil {
		return err
	}
	if sch != nil {
		defer sch.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down server")
		_ = app.Shutdown()
	}()

	logger.Info("server starting", map[string]any{"addr": *addr, "census": store != nil})
	c.PrintInfo("Listening on " + *addr)
	return app.Listen(*addr)
}
