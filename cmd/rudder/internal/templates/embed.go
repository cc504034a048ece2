// Package templates provides embedded template files for screen generation.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed screen.go.tmpl
var FS embed.FS

// ScreenData contains the data for screen template substitution.
type ScreenData struct {
	Package    string // e.g., "screens"
	ScreenName string // e.g., "Profile"
	VarName    string // e.g., "profile"
	ViewType   string // e.g., "tui.View" or "any"
	ViewImport string // optional import path for ViewType
}

// RenderScreen renders the screen template with the given data.
func RenderScreen(data ScreenData) ([]byte, error) {
	tmpl, err := template.ParseFS(FS, "screen.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse screen template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render screen template: %w", err)
	}
	return buf.Bytes(), nil
}
