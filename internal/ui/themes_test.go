package ui

import (
	"slices"
	"testing"
)

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "orange"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Setenv("NO_COLOR", "1")
	InitTheme("dark")

	theme := GetCurrentTheme()
	if theme.Name != "none" {
		t.Errorf("active theme = %q, want %q with NO_COLOR set", theme.Name, "none")
	}
	if theme.Error != "" || theme.Reset != "" {
		t.Error("NoColorTheme must carry empty escape codes")
	}
}

func TestAvailableThemes(t *testing.T) {
	themes := AvailableThemes()
	for _, name := range []string{"dark", "light", "orange", "none"} {
		if !slices.Contains(themes, name) {
			t.Errorf("AvailableThemes() missing %q", name)
		}
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want dark theme success code", ColorGreen())
	}
	if ColorReset() != DarkTheme.Reset {
		t.Errorf("ColorReset() = %q, want dark theme reset code", ColorReset())
	}

	SetCurrentTheme(NoColorTheme)
	if ColorGreen() != "" || ColorBold() != "" {
		t.Error("accessors must return empty strings under the no-color theme")
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(DarkTheme)
	if got := GetCurrentTUITheme(); got != DarkTUITheme {
		t.Error("dark theme should map to the dark TUI palette")
	}

	SetCurrentTheme(NoColorTheme)
	if got := GetCurrentTUITheme(); got != NoColorTUITheme {
		t.Error("no-color theme should map to the no-color TUI palette")
	}
}
