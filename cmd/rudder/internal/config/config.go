// Package config resolves rudder.yaml and go.mod into scaffolding settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional rudder.yaml configuration.
type Config struct {
	Screens ScreensConfig `yaml:"screens"`
	View    ViewConfig    `yaml:"view"`
}

// ScreensConfig controls where generated screens live.
type ScreensConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// ViewConfig names the host toolkit's view type.
type ViewConfig struct {
	Type   string `yaml:"type,omitempty"`
	Import string `yaml:"import,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	ScreensDir string
	Package    string
	ViewType   string
	ViewImport string
}

// LoadOptional reads rudder.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "rudder.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read rudder.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rudder.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads rudder.yaml (if present) and fills in defaults from go.mod
// and convention: screens under internal/screens, view type any.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := readModulePath(dir)
	if err != nil {
		return nil, err
	}
	if err := module.CheckPath(modulePath); err != nil {
		return nil, fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	screensDir := strings.TrimSpace(cfg.Screens.Dir)
	if screensDir == "" {
		screensDir = filepath.Join("internal", "screens")
	}

	pkg := strings.TrimSpace(cfg.Screens.Package)
	if pkg == "" {
		pkg = filepath.Base(screensDir)
	}

	viewType := strings.TrimSpace(cfg.View.Type)
	if viewType == "" {
		viewType = "any"
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		ScreensDir: screensDir,
		Package:    pkg,
		ViewType:   viewType,
		ViewImport: strings.TrimSpace(cfg.View.Import),
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
