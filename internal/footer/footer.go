// Package footer implements the bar at the bottom of a page that restores
// hidden windows.
package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/theme"
)

// HomePath is where the home control navigates.
const HomePath = "/"

// Item is one minimized activator: a label and the hidden cell of the window
// it restores.
type Item struct {
	Label  string
	Hidden *state.Cell[bool]
}

// Footer holds the activators of a page in display order.
type Footer struct {
	items  []Item
	marker string
	status string
}

// New creates a footer with items in left-to-right order.
func New(items ...Item) *Footer {
	return &Footer{items: items}
}

// Items returns every item, visible or not.
func (f *Footer) Items() []Item { return f.items }

// SetMarker sets a fixed note shown after the activators.
func (f *Footer) SetMarker(s string) { f.marker = s }

// SetStatus sets the text shown next to the home control.
func (f *Footer) SetStatus(s string) { f.status = s }

// Visible returns the items whose window is hidden, in order.
func (f *Footer) Visible() []Item {
	var out []Item
	for _, it := range f.items {
		if it.Hidden.Get() {
			out = append(out, it)
		}
	}
	return out
}

// Activate restores the window of the visible item named label. It never
// hides anything.
func (f *Footer) Activate(label string) bool {
	for _, it := range f.items {
		if it.Label == label && it.Hidden.Get() {
			it.Hidden.Set(false)
			return true
		}
	}
	return false
}

// RestoreAll restores every hidden window.
func (f *Footer) RestoreAll() int {
	n := 0
	for _, it := range f.items {
		if it.Hidden.Get() {
			it.Hidden.Set(false)
			n++
		}
	}
	return n
}

// SegmentKind classifies a footer segment.
type SegmentKind int

const (
	SegmentItem SegmentKind = iota
	SegmentMarker
	SegmentStatus
	SegmentHome
)

// Segment is a column range of the footer.
type Segment struct {
	Kind       SegmentKind
	Label      string
	Start, End int
}

func homeLabel() string {
	if config.UseASCIIOnly {
		return " home "
	}
	return " ⌂ home "
}

// Layout places the segments for a footer of the given width. The home
// control is always present at the right edge; activators that don't fit are
// dropped from the right.
func (f *Footer) Layout(width int) []Segment {
	home := homeLabel()
	homeW := ansi.StringWidth(home)
	homeStart := max(width-homeW, 0)

	var status *Segment
	right := homeStart
	if f.status != "" {
		sw := ansi.StringWidth(f.status) + 2
		if right-sw > 0 {
			status = &Segment{Kind: SegmentStatus, Label: f.status, Start: right - sw, End: right}
			right -= sw
		}
	}

	var segs []Segment
	x := 0
	for _, it := range f.Visible() {
		w := ansi.StringWidth(it.Label) + 2
		if x+w > right {
			break
		}
		segs = append(segs, Segment{Kind: SegmentItem, Label: it.Label, Start: x, End: x + w})
		x += w + 1
	}
	if f.marker != "" {
		w := ansi.StringWidth(f.marker) + 2
		if x+w <= right {
			segs = append(segs, Segment{Kind: SegmentMarker, Label: f.marker, Start: x, End: x + w})
		}
	}

	if status != nil {
		segs = append(segs, *status)
	}
	return append(segs, Segment{Kind: SegmentHome, Label: strings.TrimSpace(home), Start: homeStart, End: width})
}

// At returns the segment under column x.
func (f *Footer) At(x, width int) (Segment, bool) {
	for _, s := range f.Layout(width) {
		if x >= s.Start && x < s.End {
			return s, true
		}
	}
	return Segment{}, false
}

// Render draws the footer as a single line of exactly width columns.
func (f *Footer) Render(width int) string {
	if width <= 0 {
		return ""
	}
	base := lipgloss.NewStyle().Background(theme.FooterBg()).Foreground(theme.FooterFg())
	item := lipgloss.NewStyle().Background(theme.FooterItem()).Foreground(theme.ButtonFg()).Bold(true)
	home := lipgloss.NewStyle().Background(theme.FooterHome()).Foreground(theme.ButtonFg()).Bold(true)
	marker := lipgloss.NewStyle().Background(theme.FooterBg()).Foreground(theme.ChatSpeaker()).Italic(true)

	var sb strings.Builder
	x := 0
	for _, s := range f.Layout(width) {
		if s.Start > x {
			sb.WriteString(base.Render(strings.Repeat(" ", s.Start-x)))
		}
		var text string
		switch s.Kind {
		case SegmentHome:
			text = home.Render(ansi.Truncate(homeLabel(), s.End-s.Start, ""))
		case SegmentItem:
			text = item.Render(" " + s.Label + " ")
		case SegmentMarker:
			text = marker.Render(" " + s.Label + " ")
		case SegmentStatus:
			text = base.Render(" " + s.Label + " ")
		}
		sb.WriteString(text)
		x = s.End
	}
	if x < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-x)))
	}
	return sb.String()
}
