package bootstrap

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/env"
	"github.com/galaplate/creational/handlers"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/organism"
	"github.com/galaplate/creational/scheduler"
	"github.com/galaplate/creational/supports"
	"github.com/galaplate/creational/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// AppConfig holds configuration for creating the Fiber app. An empty
// TemplateDir serves the templates embedded in the views package.
type AppConfig struct {
	TemplateDir    string
	TemplateExt    string
	Store          *database.Store
	SetupRoutes    func(*fiber.App)
	StartScheduler bool
	FiberConfig    *fiber.Config
}

// DefaultConfig returns default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		TemplateExt:    ".html",
		StartScheduler: true,
	}
}

func newEngine(cfg *AppConfig) *html.Engine {
	if cfg.TemplateDir != "" {
		return html.New(cfg.TemplateDir, cfg.TemplateExt)
	}
	return html.NewFileSystem(http.FS(views.FS), cfg.TemplateExt)
}

// Boot loads .env and the YAML config directory into the global manager,
// configures logging and returns the typed settings.
func Boot(configPath string) (config.Settings, error) {
	env.Load()

	// Without a config directory every setting keeps its default.
	if _, err := os.Stat(configPath); err == nil {
		data, err := config.NewLoader(configPath).Load()
		if err != nil {
			return config.Settings{}, err
		}
		config.InitializeGlobal(data)
	}
	settings := config.SettingsFrom(config.GetGlobal())

	level, err := logger.ParseLogLevel(settings.LogLevel)
	if err != nil {
		return settings, err
	}
	logger.SetLevel(level)
	if err := logger.Configure(settings.LogDir); err != nil {
		return settings, err
	}

	if err := organism.Default().SetDefaultVariant(organism.Variant(settings.PondVariant)); err != nil {
		return settings, fmt.Errorf("pond.variant: %w", err)
	}

	return settings, nil
}

// ErrorHandler renders validation failures as GlobalErrorHandlerResp and
// everything else as {success, message, error}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validation *supports.GlobalErrorHandlerResp
	if errors.As(err, &validation) {
		return c.Status(validation.Status).JSON(validation)
	}

	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		logger.Error(err.Error(), map[string]any{"path": c.Path()})
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   message,
	})
}

// NewApp creates the fiber app with every route mounted. When StartScheduler
// is set and pond.restock_schedule is configured, the restock task starts too.
func NewApp(opts ...func(*AppConfig)) (*fiber.App, *scheduler.Scheduler, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	fiberConfig := fiber.Config{}
	if cfg.FiberConfig != nil {
		fiberConfig = *cfg.FiberConfig
	}
	fiberConfig.ErrorHandler = ErrorHandler
	if fiberConfig.Views == nil {
		fiberConfig.Views = newEngine(cfg)
	}

	app := fiber.New(fiberConfig)
	handlers.New(cfg.Store).Register(app)

	if cfg.SetupRoutes != nil {
		cfg.SetupRoutes(app)
	}

	if !cfg.StartScheduler || cfg.Store == nil {
		return app, nil, nil
	}

	settings := config.SettingsFrom(config.GetGlobal())
	if settings.RestockSchedule == "" {
		return app, nil, nil
	}

	sch := scheduler.New()
	sch.Register("pond-restock", scheduler.NewRestock(
		cfg.Store,
		settings.RestockSchedule,
		organism.Variant(settings.PondVariant),
		settings.PondAnimals,
		settings.PondPlants,
	))
	if err := sch.RunTasks(); err != nil {
		return nil, nil, err
	}
	sch.Start()

	return app, sch, nil
}
