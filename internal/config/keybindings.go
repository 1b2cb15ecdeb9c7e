package config

import (
	"fmt"
	"sort"
	"strings"
)

// Keybinding represents a single keybinding entry.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// ActionDescriptions describes every bindable action.
var ActionDescriptions = map[string]string{
	"focus_next":      "Focus next window",
	"focus_prev":      "Focus previous window",
	"activate":        "Open link or control",
	"go_home":         "Go to the home page",
	"restore_all":     "Restore minimized windows",
	"open_launcher":   "Open page launcher",
	"toggle_help":     "Toggle help",
	"quit":            "Quit",
	"close_window":    "Close window",
	"toggle_expand":   "Expand / restore window",
	"minimize_window": "Minimize window to footer",
	"nudge_up":        "Move window up",
	"nudge_down":      "Move window down",
	"nudge_left":      "Move window left",
	"nudge_right":     "Move window right",
	"next_tab":        "Next tab",
	"prev_tab":        "Previous tab",
	"scroll_up":       "Scroll content up",
	"scroll_down":     "Scroll content down",
	"next_link":       "Select next link",
	"prev_link":       "Select previous link",
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	keyToAction   map[string]string
	actionToKeys  map[string][]string
	normalizer    *KeyNormalizer
	desktopOrder  []string
	windowActions []string
}

// NewKeybindRegistry builds a registry from the keybindings of cfg. When two
// actions claim the same key, the window section wins so that window keys are
// never shadowed by desktop keys.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
		normalizer:   NewKeyNormalizer(),
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r.desktopOrder = r.register(cfg.Keybindings.Desktop)
	r.windowActions = r.register(cfg.Keybindings.Window)
	return r
}

func (r *KeybindRegistry) register(section map[string][]string) []string {
	actions := make([]string, 0, len(section))
	for action := range section {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		for _, key := range section[action] {
			valid, _ := r.normalizer.ValidateKey(key)
			if !valid {
				continue
			}
			r.actionToKeys[action] = append(r.actionToKeys[action], key)
			for _, variant := range r.normalizer.NormalizeKey(key) {
				r.keyToAction[variant] = action
			}
		}
	}
	return actions
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	if action, ok := r.keyToAction[key]; ok {
		return action
	}
	for _, variant := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[variant]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay returns the keys bound to action formatted for the help
// overlay.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.GetKeys(action)
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = displayKey(k)
	}
	return strings.Join(display, ", ")
}

func displayKey(k string) string {
	switch k {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	case "space":
		return "Space"
	}
	parts := strings.Split(k, "+")
	for i, p := range parts[:len(parts)-1] {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "+")
}

// GetKeybindings returns the keybinding sections shown in the help overlay.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	desktop := KeybindingSection{Title: "DESKTOP"}
	for _, action := range registry.desktopOrder {
		addBinding(&desktop, registry, action)
	}
	window := KeybindingSection{Title: "FOCUSED WINDOW"}
	for _, action := range registry.windowActions {
		addBinding(&window, registry, action)
	}

	return []KeybindingSection{
		desktop,
		window,
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Drag title bar", "Move window"},
				{"Click", "Focus and raise window"},
				{"Wheel", "Scroll window content"},
				{"Footer item", "Restore minimized window"},
			},
		},
	}
}

func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	desc, ok := ActionDescriptions[action]
	if !ok {
		desc = action
	}
	section.Bindings = append(section.Bindings, Keybinding{Key: keys, Description: desc})
}

// KeyNormalizer maps user-written key names onto the strings bubbletea
// reports for key presses.
type KeyNormalizer struct {
	aliases map[string]string
}

// NewKeyNormalizer returns a normalizer with the common aliases.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string]string{
			"return":   "enter",
			"escape":   "esc",
			"spacebar": "space",
			" ":        "space",
			"pageup":   "pgup",
			"pagedown": "pgdown",
			"del":      "delete",
		},
	}
}

// NormalizeKey returns the spellings of key that should match a key press.
// The first element is key itself with lowercased modifiers.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	if key == "" {
		return nil
	}
	parts := strings.Split(key, "+")
	base := parts[len(parts)-1]
	mods := parts[:len(parts)-1]
	for i := range mods {
		mods[i] = strings.ToLower(mods[i])
	}
	if len(mods) > 0 {
		// Modified letters are reported lowercase.
		base = strings.ToLower(base)
	}

	primary := strings.Join(append(append([]string{}, mods...), base), "+")
	out := []string{primary}
	if alias, ok := n.aliases[strings.ToLower(base)]; ok {
		out = append(out, strings.Join(append(append([]string{}, mods...), alias), "+"))
	}
	return out
}

// ValidateKey reports whether key can be bound, with a reason when it can't.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if key == "" {
		return false, "empty key"
	}
	parts := strings.Split(key, "+")
	if parts[len(parts)-1] == "" && key != "+" {
		return false, fmt.Sprintf("key %q has no base key", key)
	}
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl", "alt", "shift", "super", "meta", "hyper":
		default:
			return false, fmt.Sprintf("unknown modifier %q in %q", mod, key)
		}
	}
	return true, ""
}
