package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etbcor/tomo/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}
	if cfg.Appearance.NudgeStep != config.DefaultNudgeStep {
		t.Errorf("Expected nudge step %d, got %d", config.DefaultNudgeStep, cfg.Appearance.NudgeStep)
	}
	if cfg.Analytics.Endpoint != "" {
		t.Error("Analytics should be disabled by default")
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	required := map[string]map[string][]string{
		"desktop": cfg.Keybindings.Desktop,
		"window":  cfg.Keybindings.Window,
	}
	actions := map[string][]string{
		"desktop": {"focus_next", "focus_prev", "go_home", "quit"},
		"window":  {"close_window", "toggle_expand", "minimize_window", "nudge_up", "next_tab"},
	}

	for section, names := range actions {
		for _, action := range names {
			keys, ok := required[section][action]
			if !ok {
				t.Errorf("Expected %s.%s keybinding to exist", section, action)
				continue
			}
			if len(keys) == 0 {
				t.Errorf("Expected %s.%s to have at least one key bound", section, action)
			}
		}
	}
}

// =============================================================================
// Loading Tests
// =============================================================================

func TestLoadUserConfigFrom_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tomo", "config.toml")

	cfg, err := config.LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}
	if cfg.Appearance.BorderStyle != "rounded" {
		t.Errorf("Expected rounded border, got %q", cfg.Appearance.BorderStyle)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# tomo configuration") {
		t.Error("Expected written config to start with the header")
	}
}

func TestLoadUserConfigFrom_MergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[appearance]
nudge_step = 3
show_status = false

[keybindings.window]
close_window = ["ctrl+w"]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}

	if cfg.Appearance.NudgeStep != 3 {
		t.Errorf("NudgeStep = %d, want 3", cfg.Appearance.NudgeStep)
	}
	if cfg.Appearance.ShowStatus {
		t.Error("ShowStatus should be false when set in the file")
	}
	if !cfg.Appearance.Wallpaper {
		t.Error("Wallpaper should keep its default when absent from the file")
	}
	if got := cfg.Keybindings.Window["close_window"]; len(got) != 1 || got[0] != "ctrl+w" {
		t.Errorf("close_window = %v, want [ctrl+w]", got)
	}
	if len(cfg.Keybindings.Window["toggle_expand"]) == 0 {
		t.Error("Unlisted window bindings should keep their defaults")
	}
}

func TestLoadUserConfigFrom_Normalizes(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantNudge  int
		wantBorder string
	}{
		{"negative nudge", "[appearance]\nnudge_step = -4\n", 1, "rounded"},
		{"huge nudge", "[appearance]\nnudge_step = 500\n", config.MaxNudgeStep, "rounded"},
		{"unknown border", "[appearance]\nborder_style = \"wavy\"\n", 1, "rounded"},
		{"known border", "[appearance]\nborder_style = \"double\"\n", 1, "double"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := config.LoadUserConfigFrom(path)
			if err != nil {
				t.Fatalf("LoadUserConfigFrom: %v", err)
			}
			if cfg.Appearance.NudgeStep != tt.wantNudge {
				t.Errorf("NudgeStep = %d, want %d", cfg.Appearance.NudgeStep, tt.wantNudge)
			}
			if cfg.Appearance.BorderStyle != tt.wantBorder {
				t.Errorf("BorderStyle = %q, want %q", cfg.Appearance.BorderStyle, tt.wantBorder)
			}
		})
	}
}

func TestLoadUserConfigFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadUserConfigFrom(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestApply(t *testing.T) {
	defer config.Apply(config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.Appearance.NudgeStep = 4
	cfg.Appearance.ASCIIOnly = true
	config.Apply(cfg)

	if config.NudgeStep != 4 {
		t.Errorf("NudgeStep = %d, want 4", config.NudgeStep)
	}
	if config.GetWindowPillLeft() != "[" {
		t.Error("ASCII mode should use ASCII pills")
	}
	if got := config.GetBorderForStyle(); got.TopLeft != "+" {
		t.Errorf("ASCII border TopLeft = %q, want +", got.TopLeft)
	}
}

func TestWindowButtonsHaveFixedWidth(t *testing.T) {
	for _, ascii := range []bool{false, true} {
		config.UseASCIIOnly = ascii
		for _, b := range []string{
			config.GetWindowButtonMinimize(),
			config.GetWindowButtonExpand(false),
			config.GetWindowButtonExpand(true),
			config.GetWindowButtonClose(),
		} {
			if n := len([]rune(b)); n != config.ButtonWidth {
				t.Errorf("button %q (ascii=%v) is %d runes, want %d", b, ascii, n, config.ButtonWidth)
			}
		}
	}
	config.UseASCIIOnly = false
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if keys := registry.GetKeys("close_window"); len(keys) == 0 {
		t.Error("Expected close_window to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	tests := []struct {
		key  string
		want string
	}{
		{"tab", "focus_next"},
		{"shift+tab", "focus_prev"},
		{"x", "close_window"},
		{"up", "nudge_up"},
		{"]", "next_tab"},
		{"Ctrl+C", "quit"},
		{"ctrl+shift+alt+super+hyper+x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := registry.GetAction(tt.key); got != tt.want {
				t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if got := registry.GetKeysForDisplay("nudge_left"); got != "←" {
		t.Errorf("GetKeysForDisplay(nudge_left) = %q, want ←", got)
	}
	if got := registry.GetKeysForDisplay("quit"); got != "q, Ctrl+c" {
		t.Errorf("GetKeysForDisplay(quit) = %q, want %q", got, "q, Ctrl+c")
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if keys := registry.GetKeys("nonexistent_action"); len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_SkipsInvalidKeys(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Window["close_window"] = []string{"", "banana+x", "w"}
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("close_window")
	if len(keys) != 1 || keys[0] != "w" {
		t.Errorf("GetKeys(close_window) = %v, want [w]", keys)
	}
}

func TestGetKeybindings(t *testing.T) {
	sections := config.GetKeybindings(config.NewKeybindRegistry(config.DefaultConfig()))
	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if len(s.Bindings) == 0 {
			t.Errorf("Section %q has no bindings", s.Title)
		}
	}
}

// =============================================================================
// Key Normalizer Tests
// =============================================================================

func TestKeyNormalizer(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+a", "ctrl+a"},
		{"Ctrl+A", "ctrl+a"},
		{"CTRL+A", "ctrl+a"},
		{"return", "enter"},
		{"escape", "esc"},
		{"enter", "enter"},
		{"R", "R"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := normalizer.NormalizeKey(tc.input)
			if len(got) == 0 {
				t.Fatalf("NormalizeKey(%q) returned empty slice", tc.input)
			}
			found := false
			for _, k := range got {
				if k == tc.expected {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("NormalizeKey(%q) = %v, want to contain %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeyNormalizer_ValidateKey(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input   string
		isValid bool
	}{
		{"ctrl+a", true},
		{"n", true},
		{"enter", true},
		{"shift+tab", true},
		{"banana+x", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			valid, _ := normalizer.ValidateKey(tc.input)
			if valid != tc.isValid {
				t.Errorf("ValidateKey(%q) = %v, want %v", tc.input, valid, tc.isValid)
			}
		})
	}
}

// =============================================================================
// Action Descriptions Tests
// =============================================================================

func TestActionDescriptionsCoverDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, section := range []map[string][]string{cfg.Keybindings.Desktop, cfg.Keybindings.Window} {
		for action := range section {
			if config.ActionDescriptions[action] == "" {
				t.Errorf("Expected description for action %q", action)
			}
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetAction("x")
	}
}

func BenchmarkNormalizeKey(b *testing.B) {
	normalizer := config.NewKeyNormalizer()
	keys := []string{"ctrl+a", "Ctrl+Shift+B", "alt+1", "return"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normalizer.NormalizeKey(keys[i%len(keys)])
	}
}
