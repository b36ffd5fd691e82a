package env

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	loadMu sync.Mutex
	loaded = map[string]bool{}
)

// Load reads each file (.env when none are given) into the process
// environment. A file is read at most once, so an implicit Load from Get
// never hides files passed later. Variables that are already set win over
// the file, and a missing file is not an error.
func Load(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	for _, f := range files {
		if loaded[f] {
			continue
		}
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err == nil {
			loaded[f] = true
		}
	}
}

func Get(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	Load()

	return os.Getenv(key)
}

// GetOr returns fallback when key is unset or empty.
func GetOr(key, fallback string) string {
	if value := Get(key); value != "" {
		return value
	}
	return fallback
}
