// Package config resolves where the assistant keeps its stores and how it
// reaches the language model. Values come from an optional YAML file with
// environment overrides; nothing downstream reads the environment directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultContactsFile = "contacts.csv"
	defaultTasksFile    = "tasks.csv"
	defaultModel        = "gemini-2.0-flash"
)

type Config struct {
	// Root holds the store files and (by default) the config file itself.
	Root         string `yaml:"root"`
	ContactsFile string `yaml:"contacts_file"`
	TasksFile    string `yaml:"tasks_file"`
	Model        string `yaml:"model"`
}

// Default returns the built-in configuration: stores under ~/.deskmate (or
// DESKMATE_ROOT when set).
func Default() Config {
	root := os.Getenv("DESKMATE_ROOT")
	if root == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			root = filepath.Join(home, ".deskmate")
		} else {
			root = ".deskmate"
		}
	}
	return Config{
		Root:         root,
		ContactsFile: defaultContactsFile,
		TasksFile:    defaultTasksFile,
		Model:        defaultModel,
	}
}

// Load reads the YAML config at path over the defaults. An empty path means
// <root>/config.yaml; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = filepath.Join(cfg.Root, "config.yaml")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = Default().Root
	}
	if cfg.ContactsFile == "" {
		cfg.ContactsFile = defaultContactsFile
	}
	if cfg.TasksFile == "" {
		cfg.TasksFile = defaultTasksFile
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return cfg, nil
}

// ContactsPath resolves the contacts store location; relative filenames live
// under the root.
func (c Config) ContactsPath() string {
	return c.resolve(c.ContactsFile)
}

// TasksPath resolves the tasks store location.
func (c Config) TasksPath() string {
	return c.resolve(c.TasksFile)
}

func (c Config) resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Root, file)
}

// APIKey returns the Gemini API key from the environment.
func (c Config) APIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
