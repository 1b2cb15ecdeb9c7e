// Package config handles the tomo user configuration file, runtime settings
// shared by the desktop packages, and the keybinding registry.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// ErrNoEditor is returned when no editor can be found to open the config file.
var ErrNoEditor = errors.New("no editor found, set $EDITOR")

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Content     ContentConfig     `toml:"content"`
	Analytics   AnalyticsConfig   `toml:"analytics"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig controls how the desktop looks and moves.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	BorderStyle string `toml:"border_style"`
	NudgeStep   int    `toml:"nudge_step"`
	ShowStatus  bool   `toml:"show_status"`
	Wallpaper   bool   `toml:"wallpaper"`
	ASCIIOnly   bool   `toml:"ascii_only"`
}

// ContentConfig points at an optional directory of markdown and link files
// that override the embedded content.
type ContentConfig struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// AnalyticsConfig configures the page-view beacon. An empty endpoint
// disables it.
type AnalyticsConfig struct {
	Endpoint  string `toml:"endpoint"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// KeybindingsConfig maps action names to key strings, grouped the way the
// help overlay shows them.
type KeybindingsConfig struct {
	Desktop map[string][]string `toml:"desktop"`
	Window  map[string][]string `toml:"window"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:       "",
			BorderStyle: "rounded",
			NudgeStep:   DefaultNudgeStep,
			ShowStatus:  true,
			Wallpaper:   true,
		},
		Content: ContentConfig{
			Watch: true,
		},
		Analytics: AnalyticsConfig{
			TimeoutMS: 3000,
		},
		Keybindings: KeybindingsConfig{
			Desktop: map[string][]string{
				"focus_next":    {"tab"},
				"focus_prev":    {"shift+tab"},
				"activate":      {"enter", "space"},
				"go_home":       {"H", "home"},
				"restore_all":   {"R"},
				"open_launcher": {"/", "ctrl+p"},
				"toggle_help":   {"?"},
				"quit":          {"q", "ctrl+c"},
			},
			Window: map[string][]string{
				"close_window":    {"x"},
				"toggle_expand":   {"f"},
				"minimize_window": {"m"},
				"nudge_up":        {"up"},
				"nudge_down":      {"down"},
				"nudge_left":      {"left"},
				"nudge_right":     {"right"},
				"next_tab":        {"]"},
				"prev_tab":        {"["},
				"scroll_up":       {"k", "pgup"},
				"scroll_down":     {"j", "pgdown"},
				"next_link":       {"n"},
				"prev_link":       {"p"},
			},
		},
	}
}

// GetConfigPath returns the path of the config file, creating its parent
// directory if needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("tomo", "config.toml"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// GetLogPath returns the path of the log file used while the desktop owns
// the terminal.
func GetLogPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join("tomo", "tomo.log"))
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the config file, writing the defaults first if it does
// not exist yet.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadUserConfigFrom(path)
}

// LoadUserConfigFrom reads the config file at path. Missing files are created
// with the defaults.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := WriteDefaultConfig(path); err != nil {
			return nil, err
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	// Decode into a fresh value so partial keybinding tables merge over the
	// defaults instead of replacing them.
	var fromFile UserConfig
	if err := toml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&fromFile, data)
	cfg.normalize()
	return cfg, nil
}

func (c *UserConfig) merge(f *UserConfig, raw []byte) {
	// Booleans cannot be told apart from their zero value after decoding, so
	// check the raw document for their keys.
	var probe map[string]map[string]any
	_ = toml.Unmarshal(raw, &probe)
	has := func(section, key string) bool {
		_, ok := probe[section][key]
		return ok
	}

	if f.Appearance.Theme != "" {
		c.Appearance.Theme = f.Appearance.Theme
	}
	if f.Appearance.BorderStyle != "" {
		c.Appearance.BorderStyle = f.Appearance.BorderStyle
	}
	if f.Appearance.NudgeStep != 0 {
		c.Appearance.NudgeStep = f.Appearance.NudgeStep
	}
	if has("appearance", "show_status") {
		c.Appearance.ShowStatus = f.Appearance.ShowStatus
	}
	if has("appearance", "wallpaper") {
		c.Appearance.Wallpaper = f.Appearance.Wallpaper
	}
	if has("appearance", "ascii_only") {
		c.Appearance.ASCIIOnly = f.Appearance.ASCIIOnly
	}

	if f.Content.Dir != "" {
		c.Content.Dir = f.Content.Dir
	}
	if has("content", "watch") {
		c.Content.Watch = f.Content.Watch
	}

	if f.Analytics.Endpoint != "" {
		c.Analytics.Endpoint = f.Analytics.Endpoint
	}
	if f.Analytics.TimeoutMS > 0 {
		c.Analytics.TimeoutMS = f.Analytics.TimeoutMS
	}

	for action, keys := range f.Keybindings.Desktop {
		c.Keybindings.Desktop[action] = keys
	}
	for action, keys := range f.Keybindings.Window {
		c.Keybindings.Window[action] = keys
	}
}

func (c *UserConfig) normalize() {
	if c.Appearance.NudgeStep < 1 {
		c.Appearance.NudgeStep = 1
	}
	if c.Appearance.NudgeStep > MaxNudgeStep {
		c.Appearance.NudgeStep = MaxNudgeStep
	}
	if !IsValidBorderStyle(c.Appearance.BorderStyle) {
		c.Appearance.BorderStyle = "rounded"
	}
	c.Content.Dir = expandHome(c.Content.Dir)
}

// WriteDefaultConfig writes the default configuration with a short header.
func WriteDefaultConfig(path string) error {
	data, err := MarshalWithHeader(DefaultConfig(), path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// MarshalWithHeader encodes cfg as TOML preceded by a comment header.
func MarshalWithHeader(cfg *UserConfig, path string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# tomo configuration\n")
	sb.WriteString("# Keybindings map an action to one or more keys.\n")
	sb.WriteString("# Set content.dir to a folder of .md / links.yaml files to override the built-in pages.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Location: " + path + "\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	sb.Write(data)
	return []byte(sb.String()), nil
}

// Apply copies the appearance settings of cfg into the runtime settings.
func Apply(cfg *UserConfig) {
	if cfg == nil {
		return
	}
	BorderStyle = cfg.Appearance.BorderStyle
	NudgeStep = cfg.Appearance.NudgeStep
	ShowStatus = cfg.Appearance.ShowStatus
	ShowWallpaper = cfg.Appearance.Wallpaper
	UseASCIIOnly = cfg.Appearance.ASCIIOnly
}

func expandHome(p string) string {
	if p == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
