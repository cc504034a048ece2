package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-drift/rudder/cmd/rudder/internal/config"
	"github.com/go-drift/rudder/cmd/rudder/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Generate a screen with its controller",
		Long: `Generate a screen and controller pair in the project's screens
directory (internal/screens by default, configurable in rudder.yaml).

The screen name must be an exported Go identifier. The generated file
is named after the screen in snake case.

Examples:
  rudder new Profile
  rudder new OrderHistory`,
		Usage: "rudder new <ScreenName>",
		Run:   runNew,
	})
}

func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("screen name is required\n\nUsage: rudder new <ScreenName>")
	}
	name := args[0]
	if err := validateScreenName(name); err != nil {
		return fmt.Errorf("invalid screen name %q: %w", name, err)
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	out, err := templates.RenderScreen(templates.ScreenData{
		Package:    resolved.Package,
		ScreenName: name,
		VarName:    lowerFirst(name),
		ViewType:   resolved.ViewType,
		ViewImport: resolved.ViewImport,
	})
	if err != nil {
		return err
	}

	dir := filepath.Join(root, resolved.ScreensDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, snakeCase(name)+"_screen.go")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func validateScreenName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return fmt.Errorf("must start with an uppercase letter")
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("must contain only letters and digits")
		}
	}
	return nil
}

// lowerFirst lowercases the leading rune: "OrderHistory" -> "orderHistory".
func lowerFirst(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// snakeCase converts an exported identifier to snake case:
// "OrderHistory" -> "order_history".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
