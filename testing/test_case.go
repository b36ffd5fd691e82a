package testing

import (
	"log"
	"os"
	"path/filepath"

	"github.com/galaplate/creational/bootstrap"
	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/database"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TestConfig struct {
	// WithStore opens a sqlite census in a temporary directory for each test.
	WithStore       bool
	SetupRoutes     func(*fiber.App)
	CustomBootstrap func(*TestCase)
	FiberConfig     *fiber.Config
	// TemplateDir overrides the embedded HTML templates.
	TemplateDir     string
}

// TestCase is a testify suite with a ready fiber app. Embed it in a suite
// struct and call suite.Run.
type TestCase struct {
	suite.Suite
	App    *fiber.App
	DB     *gorm.DB
	Store  *database.Store
	Config *TestConfig

	tempDir    string
	prevConfig *config.Manager
}

func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		WithStore: true,
	}
}

func (tc *TestCase) SetupTest() {
	if tc.Config == nil {
		tc.Config = DefaultTestConfig()
	}

	os.Setenv("APP_ENV", "testing")
	tc.isolateConfig()

	if tc.Config.WithStore {
		tc.openStore()
	}
	tc.bootstrapApplication()

	if tc.Config.CustomBootstrap != nil {
		tc.Config.CustomBootstrap(tc)
	}
}

// isolateConfig installs an empty global config for the duration of the test.
func (tc *TestCase) isolateConfig() {
	dir, err := os.MkdirTemp("", "creational-test-*")
	if err != nil {
		log.Panicf("Failed to create temp dir: %v", err)
	}
	tc.tempDir = dir

	m := config.NewManager()
	m.Set("database.default", "sqlite")
	m.Set("database.connections.sqlite.driver", "sqlite")
	m.Set("database.connections.sqlite.database", filepath.Join(dir, "census.sqlite"))
	tc.prevConfig = config.SetGlobal(m)
}

func (tc *TestCase) openStore() {
	db, err := database.Open(config.GetGlobal(), database.DefaultGormConfig())
	if err != nil {
		log.Panicf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Panicf("Failed to migrate test database: %v", err)
	}
	tc.DB = db
	tc.Store = database.NewStore(db)
}

func (tc *TestCase) bootstrapApplication() {
	app, _, err := bootstrap.NewApp(func(ac *bootstrap.AppConfig) {
		ac.Store = tc.Store
		ac.SetupRoutes = tc.Config.SetupRoutes
		ac.FiberConfig = tc.Config.FiberConfig
		if tc.Config.TemplateDir != "" {
			ac.TemplateDir = tc.Config.TemplateDir
		}
		ac.StartScheduler = false
	})
	if err != nil {
		log.Panicf("Failed to bootstrap app: %v", err)
	}
	tc.App = app
}

func (tc *TestCase) TearDownTest() {
	if tc.DB != nil {
		if sqlDB, err := tc.DB.DB(); err == nil {
			sqlDB.Close()
		}
		tc.DB = nil
		tc.Store = nil
	}
	if tc.prevConfig != nil {
		config.SetGlobal(tc.prevConfig)
		tc.prevConfig = nil
	}
	if tc.tempDir != "" {
		os.RemoveAll(tc.tempDir)
		tc.tempDir = ""
	}
}

func (tc *TestCase) GetDB() *gorm.DB {
	return tc.DB
}

func (tc *TestCase) GetApp() *fiber.App {
	return tc.App
}
