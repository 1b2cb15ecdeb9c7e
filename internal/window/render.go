package window

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/pool"
	"github.com/etbcor/tomo/internal/theme"
)

// Render draws the window frame at its bounds inside container. The result
// is exactly Bounds(container).W columns by Bounds(container).H lines.
func (w *Window) Render(container Rect, focused bool) string {
	b := w.Bounds(container)
	if b.W < config.ChromeCols+1 || b.H < config.ChromeRows {
		return ""
	}

	borderColor := theme.BorderUnfocused()
	if focused {
		borderColor = theme.BorderFocused()
	}
	border := config.GetBorderForStyle()
	edge := lipgloss.NewStyle().Foreground(borderColor)
	innerW := b.W - config.ChromeCols

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)
	sb.Grow(b.W * b.H * 2)

	sb.WriteString(w.renderTitleBar(b.W, borderColor, focused))

	var inner []string
	if tabs, ok := w.Content.(*Tabs); ok {
		inner = append(inner, renderTabBar(tabs, innerW))
	}
	c := w.ContentRect(container)
	inner = append(inner, w.renderBody(c.W, c.H)...)

	left, right := edge.Render(border.Left), edge.Render(border.Right)
	for _, line := range inner {
		sb.WriteByte('\n')
		sb.WriteString(left)
		sb.WriteString(line)
		sb.WriteString(right)
	}

	sb.WriteByte('\n')
	sb.WriteString(edge.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerW) + border.BottomRight))
	return sb.String()
}

func (w *Window) renderTitleBar(width int, borderColor color.Color, focused bool) string {
	controls := w.Controls()
	start := buttonsStart(width, len(controls))
	titleEnd := width - 1
	if start >= 0 {
		titleEnd = start - 1
	}

	edge := lipgloss.NewStyle().Foreground(borderColor)

	title := w.renderTitle()
	room := titleEnd - 1 - 1 // keep one fill cell
	if room < 1 {
		title = ""
	} else if ansi.StringWidth(title) > room {
		title = ansi.Truncate(title, room, "…")
	}

	fillW := titleEnd - 1 - ansi.StringWidth(title)
	fill := strings.Repeat(config.GetWindowBorderTop(), max(fillW, 0))
	var fillRendered string
	if w.decor.Has(DecorRainbow) {
		fillRendered = rainbow(fill)
	} else {
		fillRendered = edge.Render(fill)
	}

	var sb strings.Builder
	sb.WriteString(edge.Render(config.GetWindowBorderTopLeft()))
	sb.WriteString(title)
	sb.WriteString(fillRendered)
	if start >= 0 {
		sb.WriteString(w.renderButtons(controls, borderColor, focused))
	}
	sb.WriteString(edge.Render(config.GetWindowBorderTopRight()))
	return sb.String()
}

func (w *Window) renderTitle() string {
	text := lipgloss.NewStyle().Foreground(theme.TitleText()).Bold(true)
	prefix, rest, ok := TitleParts(w.Title)
	if !ok {
		return text.Render(" " + w.Title + " ")
	}
	accent := lipgloss.NewStyle().Foreground(theme.TitlePrefix()).Bold(true).Italic(true)
	return text.Render(" "+prefix+" ") + accent.Render(rest) + text.Render(" ")
}

func controlColor(c Control) color.Color {
	switch c {
	case ControlMinimize:
		return theme.ButtonMinimize()
	case ControlExpand:
		return theme.ButtonExpand()
	}
	return theme.ButtonClose()
}

func (w *Window) renderButtons(controls []Control, borderColor color.Color, focused bool) string {
	bg := func(c Control) color.Color {
		if focused {
			return controlColor(c)
		}
		return borderColor
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(bg(controls[0])).Render(config.GetWindowPillLeft()))
	for _, c := range controls {
		style := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(bg(c))
		var glyph string
		switch c {
		case ControlMinimize:
			glyph = config.GetWindowButtonMinimize()
		case ControlExpand:
			glyph = config.GetWindowButtonExpand(w.expanded)
		default:
			glyph = config.GetWindowButtonClose()
		}
		sb.WriteString(style.Render(glyph))
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(bg(controls[len(controls)-1])).Render(config.GetWindowPillRight()))
	return sb.String()
}

func rainbow(s string) string {
	colors := theme.Rainbow()
	var sb strings.Builder
	i := 0
	for _, r := range s {
		sb.WriteString(lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Render(string(r)))
		i++
	}
	return sb.String()
}

func renderTabBar(t *Tabs, width int) string {
	active := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(theme.TabActive()).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TabInactive())
	sep := lipgloss.NewStyle().Foreground(theme.TabInactive()).Render("│")

	var sb strings.Builder
	x := 0
	for i, s := range tabSpans(t.Labels(), width) {
		if i > 0 {
			sb.WriteString(sep)
			x++
		}
		label := ansi.Truncate(" "+s.label+" ", s.end-s.start, "")
		if t.Visible(s.label) {
			sb.WriteString(active.Render(label))
		} else {
			sb.WriteString(inactive.Render(label))
		}
		x = s.end
	}
	if x < width {
		sb.WriteString(strings.Repeat(" ", width-x))
	}
	return sb.String()
}

func (w *Window) renderBody(width, height int) []string {
	if height <= 0 {
		return nil
	}
	var raw string
	if body := activeBody(w.Content); body != nil && width > 0 {
		raw = body.Render(width, height)
	}

	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if raw == "" {
		lines = nil
	}
	if w.Scrollable() {
		w.maxScroll = max(len(lines)-height, 0)
		w.scroll = min(w.scroll, w.maxScroll)
		lines = lines[w.scroll:]
	}

	return FitLines(lines, width, height, w.pattern())
}

func (w *Window) pattern() func(x, y int) string {
	faint := lipgloss.NewStyle().Foreground(theme.WallpaperFg())
	switch {
	case w.decor.Has(DecorDiagTP):
		return func(x, y int) string {
			if (x+2*y)%6 == 0 {
				return faint.Render("+")
			}
			return " "
		}
	case w.decor.Has(DecorDiag):
		return func(x, y int) string {
			if (x+y)%4 == 0 {
				return faint.Render("╱")
			}
			return " "
		}
	}
	return nil
}

// FitLines clips or pads lines to exactly width columns and height rows.
// Padding cells come from pattern when it is not nil.
func FitLines(lines []string, width, height int, pattern func(x, y int) string) []string {
	out := make([]string, height)
	for y := range height {
		var line string
		if y < len(lines) {
			line = lines[y]
		}
		lw := ansi.StringWidth(line)
		if lw > width {
			line = ansi.Truncate(line, width, "")
			lw = ansi.StringWidth(line)
		}
		if lw < width {
			if pattern == nil {
				line += strings.Repeat(" ", width-lw)
			} else {
				var sb strings.Builder
				sb.WriteString(line)
				for x := lw; x < width; x++ {
					sb.WriteString(pattern(x, y))
				}
				line = sb.String()
			}
		}
		out[y] = line
	}
	return out
}

// Clip cuts a rendered block drawn at (x, y) to the viewport of the given
// size, returning the visible part and where to draw it.
func Clip(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	height := len(lines)
	width := 0
	if height > 0 {
		width = ansi.StringWidth(lines[0])
	}

	if x+width <= 0 || x >= viewportWidth || y+height <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop, clipLeft := max(-y, 0), max(-x, 0)
	finalX, finalY := max(x, 0), max(y, 0)

	visible := lines[clipTop:]
	if n := viewportHeight - finalY; n < len(visible) {
		visible = visible[:n]
	}

	if clipLeft > 0 || finalX+width > viewportWidth {
		right := clipLeft + viewportWidth - finalX
		for i, line := range visible {
			visible[i] = ansi.Cut(line, clipLeft, right)
		}
	}
	return strings.Join(visible, "\n"), finalX, finalY
}
