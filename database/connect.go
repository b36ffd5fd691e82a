package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/galaplate/creational/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	GormConfig *gorm.Config
}

type OptFunc func(*Config)

// WithLogLevel sets the gorm log level: silent, error, warn or info.
func WithLogLevel(level string) OptFunc {
	return func(c *Config) {
		c.GormConfig.Logger = newGormLogger(level)
	}
}

func newGormLogger(level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = gormlogger.Silent
	case "error":
		logLevel = gormlogger.Error
	case "info":
		logLevel = gormlogger.Info
	default:
		logLevel = gormlogger.Warn
	}

	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

// DefaultGormConfig returns the default GORM configuration
func DefaultGormConfig() *Config {
	return &Config{
		GormConfig: &gorm.Config{
			Logger:                                   newGormLogger("warn"),
			DisableForeignKeyConstraintWhenMigrating: true,
		},
	}
}

// New opens the connection named by database.default in the global config
// and migrates the census tables.
func New(opts ...OptFunc) (*gorm.DB, error) {
	cfg := DefaultGormConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := Open(config.GetGlobal(), cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Open opens the connection named by database.default in m.
func Open(m *config.Manager, cfg *Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = DefaultGormConfig()
	}

	name := m.GetStringOr("database.default", "sqlite")
	key := func(field string) string {
		return fmt.Sprintf("database.connections.%s.%s", name, field)
	}

	driver := m.GetStringOr(key("driver"), name)
	host := m.GetString(key("host"))
	port := m.GetString(key("port"))
	username := m.GetString(key("username"))
	password := m.GetString(key("password"))
	database := m.GetString(key("database"))

	var dialector gorm.Dialector
	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, username, password, database,
		))
	case "mysql":
		dialector = mysql.Open(fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			username, password, host, port, database,
		))
	case "sqlite":
		if database == "" {
			database = "storage/census.sqlite"
		}
		if database != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(database), 0755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		dialector = sqlite.Open(database)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: sqlite, mysql, postgres)", driver)
	}

	db, err := gorm.Open(dialector, cfg.GormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates the census tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pond{}, &OrganismRecord{}, &BeverageRecord{})
}
