package desktop

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/theme"
)

// Wallpaper is the background drawn behind a page's windows.
type Wallpaper int

const (
	// WallpaperNone leaves the background blank. Nested pages use it.
	WallpaperNone Wallpaper = iota
	// WallpaperCyberpunk is a star field over a receding grid.
	WallpaperCyberpunk
	// WallpaperBlack is solid black.
	WallpaperBlack
)

// Render draws the wallpaper as exactly width by height cells.
func (wp Wallpaper) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", width)
	rows := make([]string, height)

	switch {
	case wp == WallpaperBlack:
		style := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
		for y := range rows {
			rows[y] = style.Render(blank)
		}
	case wp == WallpaperCyberpunk && config.ShowWallpaper:
		sky := lipgloss.NewStyle().Foreground(theme.WallpaperFg()).Background(theme.WallpaperBg())
		grid := lipgloss.NewStyle().Foreground(theme.TitlePrefix()).Background(theme.WallpaperBg())
		horizon := height * 2 / 3
		for y := range rows {
			if y < horizon {
				rows[y] = sky.Render(starRow(y, width))
			} else {
				rows[y] = grid.Render(gridRow(y-horizon, width))
			}
		}
	default:
		for y := range rows {
			rows[y] = blank
		}
	}
	return strings.Join(rows, "\n")
}

func starRow(y, width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for x := range width {
		// Hashed, so the sky stays put between redraws.
		h := uint32(x*73856093) ^ uint32(y*19349663)
		switch {
		case h%97 == 0:
			sb.WriteString("✦")
		case h%41 == 0:
			sb.WriteString("·")
		default:
			sb.WriteByte(' ')
		}
	}
	if config.UseASCIIOnly {
		return strings.NewReplacer("✦", "*", "·", ".").Replace(sb.String())
	}
	return sb.String()
}

// gridRow draws row depth of the floor grid: horizontal lines thin out with
// distance and vertical lines fan out from the center.
func gridRow(depth, width int) string {
	if depth == 0 || depth&(depth-1) == 0 {
		line := "─"
		if config.UseASCIIOnly {
			line = "-"
		}
		return strings.Repeat(line, width)
	}
	center := width / 2
	spread := 4 + depth*3
	var sb strings.Builder
	sb.Grow(width)
	for x := range width {
		d := x - center
		switch {
		case d != 0 && d%spread == 0 && d < 0:
			sb.WriteString("╱")
		case d != 0 && d%spread == 0:
			sb.WriteString("╲")
		case d == 0:
			sb.WriteString("│")
		default:
			sb.WriteByte(' ')
		}
	}
	if config.UseASCIIOnly {
		return strings.NewReplacer("╱", "/", "╲", "\\", "│", "|").Replace(sb.String())
	}
	return sb.String()
}
