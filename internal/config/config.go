// Package config loads tudu's optional user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTasksFile is the tasks file used when nothing else is
// configured, relative to the working directory.
const DefaultTasksFile = "todos.json"

// EnvTasksFile is the environment variable overriding the tasks file path.
const EnvTasksFile = "TUDU_FILE"

// Config is the content of ~/.tudu/config.yaml.
type Config struct {
	TasksFile string `yaml:"tasks_file"`
}

// Path returns the config file location (~/.tudu/config.yaml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tudu", "config.yaml"), nil
}

// Load reads the config file. A missing file, or an undeterminable home
// directory, yields an empty config. A config file that exists but
// cannot be read or parsed is an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ResolveTasksFile picks the tasks file path. An explicit override (the
// --file flag) wins, then the TUDU_FILE environment variable, then the
// config file, then DefaultTasksFile.
func ResolveTasksFile(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv(EnvTasksFile); env != "" {
		return env, nil
	}

	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.TasksFile != "" {
		return cfg.TasksFile, nil
	}
	return DefaultTasksFile, nil
}
