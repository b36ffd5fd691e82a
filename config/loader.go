package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/galaplate/creational/env"
	"gopkg.in/yaml.v3"
)

// Loader reads every *.yaml / *.yml file in a directory. Each file becomes a
// top-level key named after the file, so pond.yaml is reachable as "pond.*".
type Loader struct {
	configPath string
}

func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

func (l *Loader) Load() (map[string]any, error) {
	config := make(map[string]any)

	files, err := os.ReadDir(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, fmt.Errorf("config directory does not exist: %s", l.configPath)
		}
		return config, fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if file.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		filename := filepath.Join(l.configPath, file.Name())
		fileConfig, err := l.loadFile(filename)
		if err != nil {
			return config, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}

		config[strings.TrimSuffix(file.Name(), ext)] = fileConfig
	}

	return config, nil
}

func (l *Loader) loadFile(filename string) (any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var data any
	if err := yaml.Unmarshal([]byte(expandEnv(string(content))), &data); err != nil {
		return nil, err
	}

	return normalize(data), nil
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// expandEnv replaces ${VAR} and ${VAR:default} with values from env.Get.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if value := env.Get(groups[1]); value != "" {
			return value
		}
		return groups[2]
	})
}

// normalize turns map[any]any produced for non-string keys into map[string]any.
func normalize(data any) any {
	switch v := data.(type) {
	case map[string]any:
		for key, val := range v {
			v[key] = normalize(val)
		}
		return v
	case map[any]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[fmt.Sprintf("%v", key)] = normalize(val)
		}
		return result
	case []any:
		for i, val := range v {
			v[i] = normalize(val)
		}
		return v
	default:
		return v
	}
}
