// Package theme provides the colors of the desktop, optionally taken from a
// bubbletint theme.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the built-in palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

func pick(fallback string, fromTint func(t *tint.Tint) color.Color) color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color(fallback)
	}
	return fromTint(t)
}

// Window frame colors
func BorderUnfocused() color.Color {
	return pick("#8a8aa0", func(t *tint.Tint) color.Color { return t.BrightBlack })
}

func BorderFocused() color.Color {
	return pick("#AFFFFF", func(t *tint.Tint) color.Color { return t.BrightCyan })
}

func WindowFg() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) color.Color { return t.Fg })
}

func WindowBg() color.Color {
	return pick("#101018", func(t *tint.Tint) color.Color { return t.Bg })
}

// TitlePrefix colors the styled leading word of a title such as "Loading".
func TitlePrefix() color.Color {
	return pick("#ffd866", func(t *tint.Tint) color.Color { return t.BrightYellow })
}

// TitleText colors the rest of the title.
func TitleText() color.Color {
	return pick("#ffffff", func(t *tint.Tint) color.Color { return t.BrightWhite })
}

// Button colors
func ButtonFg() color.Color {
	return pick("#000000", func(t *tint.Tint) color.Color { return t.Black })
}

func ButtonClose() color.Color {
	return pick("#ff6b6b", func(t *tint.Tint) color.Color { return t.Red })
}

func ButtonExpand() color.Color {
	return pick("#7ee787", func(t *tint.Tint) color.Color { return t.Green })
}

func ButtonMinimize() color.Color {
	return pick("#ffd866", func(t *tint.Tint) color.Color { return t.Yellow })
}

// Tab strip colors
func TabActive() color.Color {
	return pick("#5c5cff", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

func TabInactive() color.Color {
	return lipgloss.Color("#808090")
}

// Link colors
func Link() color.Color {
	return pick("#00cdcd", func(t *tint.Tint) color.Color { return t.Cyan })
}

func LinkSelected() color.Color {
	return pick("#ff00ff", func(t *tint.Tint) color.Color { return t.BrightPurple })
}

// Footer colors
func FooterBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func FooterFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func FooterItem() color.Color {
	return pick("#00ff00", func(t *tint.Tint) color.Color { return t.BrightGreen })
}

func FooterHome() color.Color {
	return pick("#5c5cff", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

func FooterSeparator() color.Color {
	return lipgloss.Color("#303040")
}

// Wallpaper colors
func WallpaperFg() color.Color {
	return lipgloss.Color("#24243a")
}

func WallpaperBg() color.Color {
	return pick("#0b0b12", func(t *tint.Tint) color.Color { return t.Bg })
}

// Rainbow returns the palette cycled through by decorated title bars.
func Rainbow() []color.Color {
	t := Current()
	if t == nil {
		return []color.Color{
			lipgloss.Color("#ff6b6b"), lipgloss.Color("#ffa94d"), lipgloss.Color("#ffd866"),
			lipgloss.Color("#7ee787"), lipgloss.Color("#4dabf7"), lipgloss.Color("#b197fc"),
		}
	}
	return []color.Color{t.Red, t.BrightYellow, t.Yellow, t.Green, t.Blue, t.Purple}
}

// Chat colors used on the overflow page
func ChatSpeaker() color.Color {
	return pick("#ff6b6b", func(t *tint.Tint) color.Color { return t.BrightRed })
}

func ChatText() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) color.Color { return t.Fg })
}

// Notification colors
func NotificationError() color.Color {
	return pick("#cd0000", func(t *tint.Tint) color.Color { return t.Red })
}

func NotificationWarning() color.Color {
	return pick("#cdcd00", func(t *tint.Tint) color.Color { return t.Yellow })
}

func NotificationSuccess() color.Color {
	return pick("#00cd00", func(t *tint.Tint) color.Color { return t.Green })
}

func NotificationInfo() color.Color {
	return pick("#0000ee", func(t *tint.Tint) color.Color { return t.Blue })
}

func NotificationBg() color.Color {
	return pick("#000000", func(t *tint.Tint) color.Color { return t.Bg })
}

func NotificationFg() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) color.Color { return t.Fg })
}

// Help overlay colors
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

func HelpGray() color.Color {
	return lipgloss.Color("8")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

func HelpTitle() color.Color {
	return lipgloss.Color("12")
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
