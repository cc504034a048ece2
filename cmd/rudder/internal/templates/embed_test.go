package templates

import (
	"strings"
	"testing"
)

func TestRenderScreen(t *testing.T) {
	out, err := RenderScreen(ScreenData{
		Package:    "screens",
		ScreenName: "Profile",
		VarName:    "profile",
		ViewType:   "any",
	})
	if err != nil {
		t.Fatalf("RenderScreen failed: %v", err)
	}

	src := string(out)
	for _, want := range []string{
		"package screens",
		"type ProfileController struct",
		"controller.ScreenController",
		"type ProfileScreen struct",
		"func (s *ProfileScreen) BuildView() any",
		"screen.Screen[any]",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if strings.Contains(src, "{{") {
		t.Error("rendered screen contains unexpanded template actions")
	}
}

func TestRenderScreenWithViewImport(t *testing.T) {
	out, err := RenderScreen(ScreenData{
		Package:    "pages",
		ScreenName: "Settings",
		VarName:    "settings",
		ViewType:   "tui.View",
		ViewImport: "github.com/example/app/tui",
	})
	if err != nil {
		t.Fatalf("RenderScreen failed: %v", err)
	}

	src := string(out)
	if !strings.Contains(src, `"github.com/example/app/tui"`) {
		t.Error("rendered screen missing view import")
	}
	if !strings.Contains(src, "BuildView() tui.View") {
		t.Error("rendered screen missing view type")
	}
}
