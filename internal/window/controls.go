package window

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/config"
)

// Control is a title bar button.
type Control int

const (
	ControlMinimize Control = iota
	ControlExpand
	ControlClose
)

func (c Control) String() string {
	switch c {
	case ControlMinimize:
		return "minimize"
	case ControlExpand:
		return "expand"
	case ControlClose:
		return "close"
	}
	return "unknown"
}

// Controls returns the title bar buttons left to right.
func (w *Window) Controls() []Control {
	controls := make([]Control, 0, 3)
	if w.minimize != nil {
		controls = append(controls, ControlMinimize)
	}
	if w.expandable {
		controls = append(controls, ControlExpand)
	}
	return append(controls, ControlClose)
}

// Press performs the action of c.
func (w *Window) Press(c Control) bool {
	switch c {
	case ControlMinimize:
		return w.Minimize()
	case ControlExpand:
		return w.ToggleExpand()
	case ControlClose:
		w.Close()
		return true
	}
	return false
}

// buttonsStart returns the frame column of the first button, or -1 when the
// frame is too narrow to show them. The buttons sit between pill caps just
// inside the top-right corner.
func buttonsStart(frameWidth, n int) int {
	span := n*config.ButtonWidth + 2
	if frameWidth < span+3 {
		return -1
	}
	return frameWidth - span
}

// ControlAt returns the button under column x of the title bar, relative to
// the frame's left edge.
func (w *Window) ControlAt(x, frameWidth int) (Control, bool) {
	controls := w.Controls()
	start := buttonsStart(frameWidth, len(controls))
	if start < 0 || x < start {
		return 0, false
	}
	i := (x - start) / config.ButtonWidth
	if i >= len(controls) {
		return 0, false
	}
	return controls[i], true
}

// tabSpan is the column range of one tab label in the tab bar.
type tabSpan struct {
	label      string
	start, end int
}

func tabSpans(labels []string, width int) []tabSpan {
	spans := make([]tabSpan, 0, len(labels))
	x := 0
	for i, label := range labels {
		if i > 0 {
			x++ // separator
		}
		w := ansi.StringWidth(label) + 2
		if x >= width {
			break
		}
		end := min(x+w, width)
		spans = append(spans, tabSpan{label: label, start: x, end: end})
		x += w
	}
	return spans
}

// TabAt returns the tab label at column x of the tab bar.
func (t *Tabs) TabAt(x, width int) (string, bool) {
	for _, s := range tabSpans(t.Labels(), width) {
		if x >= s.start && x < s.end {
			return s.label, true
		}
	}
	return "", false
}

// HitKind classifies a point inside a window frame.
type HitKind int

const (
	HitNone HitKind = iota
	HitTitleBar
	HitControl
	HitTab
	HitContent
	HitFrame
)

// Hit is the result of HitTest.
type Hit struct {
	Kind    HitKind
	Control Control
	Tab     string
	// Local is relative to the content panel for HitContent.
	Local Pos
}

// HitTest classifies the absolute point p against the window drawn in
// container.
func (w *Window) HitTest(p Pos, container Rect) Hit {
	b := w.Bounds(container)
	if !b.Contains(p) {
		return Hit{}
	}
	if p.Y == b.Y {
		if c, ok := w.ControlAt(p.X-b.X, b.W); ok {
			return Hit{Kind: HitControl, Control: c}
		}
		return Hit{Kind: HitTitleBar}
	}
	if tabs, ok := w.Content.(*Tabs); ok {
		bar := w.TabBarRect(container)
		if bar.Contains(p) {
			if label, ok := tabs.TabAt(p.X-bar.X, bar.W); ok {
				return Hit{Kind: HitTab, Tab: label}
			}
			return Hit{Kind: HitFrame}
		}
	}
	c := w.ContentRect(container)
	if c.Contains(p) {
		return Hit{Kind: HitContent, Local: p.Sub(c.Origin())}
	}
	return Hit{Kind: HitFrame}
}
