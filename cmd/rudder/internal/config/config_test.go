package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/app\n\ngo 1.24.0\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.ModulePath != "github.com/example/app" {
		t.Errorf("unexpected module path %q", resolved.ModulePath)
	}
	if resolved.ScreensDir != filepath.Join("internal", "screens") {
		t.Errorf("unexpected screens dir %q", resolved.ScreensDir)
	}
	if resolved.Package != "screens" {
		t.Errorf("unexpected package %q", resolved.Package)
	}
	if resolved.ViewType != "any" {
		t.Errorf("unexpected view type %q", resolved.ViewType)
	}
}

func TestResolveWithYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/app\n")
	writeFile(t, dir, "rudder.yaml", `
screens:
  dir: ui/pages
view:
  type: tui.View
  import: github.com/example/app/tui
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.ScreensDir != "ui/pages" {
		t.Errorf("unexpected screens dir %q", resolved.ScreensDir)
	}
	if resolved.Package != "pages" {
		t.Errorf("unexpected package %q", resolved.Package)
	}
	if resolved.ViewType != "tui.View" {
		t.Errorf("unexpected view type %q", resolved.ViewType)
	}
	if resolved.ViewImport != "github.com/example/app/tui" {
		t.Errorf("unexpected view import %q", resolved.ViewImport)
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected error without go.mod")
	}
}

func TestResolveInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/app\n")
	writeFile(t, dir, "rudder.yaml", "screens: [not a mapping")

	if _, err := Resolve(dir); err == nil {
		t.Error("expected error for malformed rudder.yaml")
	}
}

func TestResolveInvalidModulePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/bad!path\n")

	if _, err := Resolve(dir); err == nil {
		t.Error("expected error for invalid module path")
	}
}
