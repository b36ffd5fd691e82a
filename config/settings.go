package config

// Settings is the typed view of the configuration used at boot.
type Settings struct {
	AppName  string
	LogLevel string
	LogDir   string

	PondVariant     string
	PondAnimals     int
	PondPlants      int
	RestockSchedule string

	BeverageKind string

	DatabaseDefault string
	ServerAddr      string
}

// SettingsFrom reads Settings from m, filling the documented defaults.
func SettingsFrom(m *Manager) Settings {
	return Settings{
		AppName:  m.GetStringOr("app.name", "creational"),
		LogLevel: m.GetStringOr("app.log.level", "info"),
		LogDir:   m.GetString("app.log.dir"),

		PondVariant:     m.GetStringOr("pond.variant", "frog_and_algae"),
		PondAnimals:     m.GetIntOr("pond.animals", 4),
		PondPlants:      m.GetIntOr("pond.plants", 1),
		RestockSchedule: m.GetString("pond.restock_schedule"),

		BeverageKind: m.GetStringOr("beverage.kind", "sugar_water"),

		DatabaseDefault: m.GetStringOr("database.default", "sqlite"),
		ServerAddr:      m.GetStringOr("server.addr", ":8080"),
	}
}
