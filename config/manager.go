package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Manager holds configuration loaded from the config directory and answers
// dot-notation lookups such as "pond.animals".
type Manager struct {
	config map[string]any
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		config: make(map[string]any),
	}
}

// Load replaces the configuration with data
func (m *Manager) Load(data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data == nil {
		data = make(map[string]any)
	}
	m.config = data
}

// Set sets a value using dot notation, creating intermediate maps
func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	setNested(m.config, key, value)
}

// Get returns the value at key, or nil if any segment is missing
func (m *Manager) Get(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return getNested(m.config, key)
}

func (m *Manager) Has(key string) bool {
	return m.Get(key) != nil
}

func (m *Manager) GetString(key string) string {
	return m.GetStringOr(key, "")
}

func (m *Manager) GetStringOr(key, fallback string) string {
	switch v := m.Get(key).(type) {
	case nil:
		return fallback
	case string:
		if v == "" {
			return fallback
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (m *Manager) GetInt(key string) int {
	return m.GetIntOr(key, 0)
}

func (m *Manager) GetIntOr(key string, fallback int) int {
	switch v := m.Get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func (m *Manager) GetBool(key string) bool {
	switch v := m.Get(key).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func getNested(data map[string]any, key string) any {
	if key == "" {
		return nil
	}

	var current any = data
	for _, part := range strings.Split(key, ".") {
		c, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = c[part]; !ok {
			return nil
		}
	}
	return current
}

func setNested(data map[string]any, key string, value any) {
	if key == "" {
		return
	}

	parts := strings.Split(key, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

var (
	globalMu      sync.RWMutex
	globalManager = NewManager()
)

// InitializeGlobal loads data into the global manager
func InitializeGlobal(data map[string]any) {
	GetGlobal().Load(data)
}

// GetGlobal returns the global config manager
func GetGlobal() *Manager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}

// SetGlobal swaps the global manager and returns the previous one
func SetGlobal(m *Manager) *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := globalManager
	globalManager = m
	return prev
}
