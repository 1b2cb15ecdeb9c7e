package config

import "charm.land/lipgloss/v2"

var borderStyles = map[string]func() lipgloss.Border{
	"rounded": lipgloss.RoundedBorder,
	"normal":  lipgloss.NormalBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
	"hidden":  lipgloss.HiddenBorder,
	"ascii":   lipgloss.ASCIIBorder,
}

// BorderStyleNames lists the accepted values of appearance.border_style.
func BorderStyleNames() []string {
	return []string{"rounded", "normal", "thick", "double", "hidden", "ascii"}
}

// IsValidBorderStyle reports whether name is a known border style.
func IsValidBorderStyle(name string) bool {
	_, ok := borderStyles[name]
	return ok
}

// GetBorderForStyle returns the window border for the configured style.
// ASCII-only mode always uses the ASCII border.
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly {
		return lipgloss.ASCIIBorder()
	}
	if fn, ok := borderStyles[BorderStyle]; ok {
		return fn()
	}
	return lipgloss.RoundedBorder()
}

// GetWindowBorderTop returns the horizontal piece used to fill title bars.
func GetWindowBorderTop() string {
	if b := GetBorderForStyle(); b.Top != "" {
		return b.Top
	}
	return " "
}

func GetWindowBorderTopLeft() string {
	if b := GetBorderForStyle(); b.TopLeft != "" {
		return b.TopLeft
	}
	return " "
}

func GetWindowBorderTopRight() string {
	if b := GetBorderForStyle(); b.TopRight != "" {
		return b.TopRight
	}
	return " "
}

// GetWindowPillLeft and GetWindowPillRight cap the title bar buttons.
func GetWindowPillLeft() string {
	if UseASCIIOnly {
		return "["
	}
	return string(rune(0xe0b6))
}

func GetWindowPillRight() string {
	if UseASCIIOnly {
		return "]"
	}
	return string(rune(0xe0b4))
}

// Window control glyphs. Each is exactly three cells wide so hit-testing can
// use fixed offsets.
func GetWindowButtonMinimize() string { return " - " }

func GetWindowButtonExpand(expanded bool) string {
	if UseASCIIOnly {
		if expanded {
			return " o "
		}
		return " O "
	}
	if expanded {
		return " ▫ "
	}
	return " □ "
}

func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return " x "
	}
	return " × "
}

// ButtonWidth is the width of each window control.
const ButtonWidth = 3
