package config

// Config retrieves a value from the global manager using dot notation.
// Example: config.Config("database.connections.sqlite.database")
func Config(key string) any {
	return GetGlobal().Get(key)
}

// ConfigString retrieves a string value.
// Example: config.ConfigString("pond.variant")
func ConfigString(key string) string {
	return GetGlobal().GetString(key)
}

// ConfigInt retrieves an int value.
// Example: config.ConfigInt("pond.animals")
func ConfigInt(key string) int {
	return GetGlobal().GetInt(key)
}

// ConfigBool retrieves a bool value.
// Example: config.ConfigBool("census.enabled")
func ConfigBool(key string) bool {
	return GetGlobal().GetBool(key)
}
