// Package window implements the desktop window: a titled frame around content
// that can be dragged, stacked, expanded, closed and minimized.
//
// A window keeps no layout state of its own beyond what it needs between
// events. Position, size and visibility live in state cells owned by the page
// so the footer and nested pages can observe and change them.
package window

import (
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/state"
)

// PinnedBack lists window ids that always stay at the back of the stack.
var PinnedBack = map[string]bool{
	"ad-win":   true,
	"john-win": true,
}

// Decor selects cosmetic treatments of a window. Values combine with |.
type Decor uint8

const (
	DecorRainbow Decor = 1 << iota
	DecorDiag
	DecorDiagTP
	DecorScroll
)

// Has reports whether d includes flag.
func (d Decor) Has(flag Decor) bool { return d&flag != 0 }

// MinimizeOverride replaces hiding with collapsing an external flag and
// resetting an external size.
type MinimizeOverride struct {
	Flag  *state.Cell[bool]
	Size  *state.Cell[Size]
	Reset Size
}

// Window is one frame on a page.
type Window struct {
	ID      string
	Title   string
	Content Content

	pos    *state.Cell[Pos]
	offset bool
	size   *state.Cell[Size]
	hidden *state.Cell[bool]

	z      *state.Counter
	zLocal int

	expandable bool
	expanded   bool
	minimize   *MinimizeOverride
	decor      Decor

	scroll    int
	maxScroll int
}

// Option configures a Window.
type Option func(*Window)

// WithZ shares the page's stacking counter with the window.
func WithZ(counter *state.Counter) Option {
	return func(w *Window) { w.z = counter }
}

// NotExpandable hides the expand control.
func NotExpandable() Option {
	return func(w *Window) { w.expandable = false }
}

// StartExpanded makes the window fill its container initially.
func StartExpanded() Option {
	return func(w *Window) { w.expanded = true }
}

// WithMinimize adds a minimize control that sets flag false and resets size
// instead of hiding the window.
func WithMinimize(flag *state.Cell[bool], size *state.Cell[Size], reset Size) Option {
	return func(w *Window) {
		w.minimize = &MinimizeOverride{Flag: flag, Size: size, Reset: reset}
	}
}

// WithDecor sets cosmetic treatments.
func WithDecor(d Decor) Option {
	return func(w *Window) { w.decor |= d }
}

// New creates a window. size and hidden are owned by the caller.
func New(id, title string, content Content, position Position, size *state.Cell[Size], hidden *state.Cell[bool], opts ...Option) *Window {
	w := &Window{
		ID:         id,
		Title:      title,
		Content:    content,
		size:       size,
		hidden:     hidden,
		expandable: true,
	}
	w.pos, w.offset = position.resolve()
	if w.pos == nil {
		w.pos = state.NewCell(Pos{})
	}
	if w.size == nil {
		w.size = state.NewCell(Size{})
	}
	if w.hidden == nil {
		w.hidden = state.NewCell(false)
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.z != nil && !PinnedBack[w.ID] {
		w.zLocal = w.z.Get()
	}
	return w
}

// Position returns the stored position. It is unaffected by expansion.
func (w *Window) Position() Pos { return w.pos.Get() }

// PositionCell returns the cell the position is stored in.
func (w *Window) PositionCell() *state.Cell[Pos] { return w.pos }

// IsOffset reports whether the window renders below a nesting banner.
func (w *Window) IsOffset() bool { return w.offset }

// Size returns the stored content size.
func (w *Window) Size() Size { return w.size.Get() }

// SizeCell returns the size cell.
func (w *Window) SizeCell() *state.Cell[Size] { return w.size }

// HiddenCell returns the visibility cell.
func (w *Window) HiddenCell() *state.Cell[bool] { return w.hidden }

// Hidden reports whether the window is collapsed to the footer.
func (w *Window) Hidden() bool { return w.hidden.Get() }

// Expanded reports whether the window fills its container.
func (w *Window) Expanded() bool { return w.expanded }

// Expandable reports whether the expand control is shown.
func (w *Window) Expandable() bool { return w.expandable }

// Z returns the window's stacking value.
func (w *Window) Z() int { return w.zLocal }

// Decor returns the window's cosmetic treatments.
func (w *Window) Decor() Decor { return w.decor }

// Pinned reports whether the window always stays at the back.
func (w *Window) Pinned() bool { return PinnedBack[w.ID] }

// Focus raises the window to the front by advancing the shared counter.
// Pinned windows advance the counter but keep their stacking value.
func (w *Window) Focus() {
	if w.z == nil {
		return
	}
	n := state.Increment(w.z)
	if !w.Pinned() {
		w.zLocal = n
	}
}

// ToggleExpand flips between the stored geometry and filling the container.
// Stored position and size are never changed.
func (w *Window) ToggleExpand() bool {
	if !w.expandable {
		return false
	}
	w.expanded = !w.expanded
	return true
}

// Close hides the window.
func (w *Window) Close() {
	if !w.hidden.Get() {
		w.hidden.Set(true)
	}
}

// Show un-hides the window.
func (w *Window) Show() {
	if w.hidden.Get() {
		w.hidden.Set(false)
	}
}

// Minimize applies the minimize override. It returns false when the window
// has none.
func (w *Window) Minimize() bool {
	if w.minimize == nil {
		return false
	}
	w.minimize.Flag.Set(false)
	w.minimize.Size.Set(w.minimize.Reset)
	return true
}

// Nudge moves the window by step cells. It is a no-op while expanded.
func (w *Window) Nudge(d Direction, step int) bool {
	if w.expanded || step <= 0 {
		return false
	}
	delta := d.delta(step)
	w.pos.Update(func(p Pos) Pos { return p.Add(delta) })
	return true
}

// Key is a key press delivered to a focused window.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

// HandleKey focuses the window and applies k. Arrows nudge by the configured
// step while not expanded; Enter activates the content. It reports whether k
// was consumed.
func (w *Window) HandleKey(k Key) bool {
	w.Focus()
	switch k {
	case KeyUp:
		return w.Nudge(Up, config.NudgeStep)
	case KeyDown:
		return w.Nudge(Down, config.NudgeStep)
	case KeyLeft:
		return w.Nudge(Left, config.NudgeStep)
	case KeyRight:
		return w.Nudge(Right, config.NudgeStep)
	case KeyEnter:
		return w.Activate()
	}
	return false
}

// Activate forwards Enter to the shown content block.
func (w *Window) Activate() bool {
	if a, ok := activeBody(w.Content).(Activator); ok {
		return a.Activate()
	}
	return false
}

// Click forwards a click at p, relative to the content panel, to the shown
// content block. Scrolled content receives the line under the pointer.
func (w *Window) Click(p Pos) bool {
	if c, ok := activeBody(w.Content).(Clicker); ok {
		p.Y += w.scroll
		return c.Click(p)
	}
	return false
}

// Select moves the selection of the shown content block.
func (w *Window) Select(delta int) bool {
	if s, ok := activeBody(w.Content).(Selector); ok {
		return s.Select(delta)
	}
	return false
}

// CycleTab moves the active tab of tabbed content.
func (w *Window) CycleTab(delta int) bool {
	if t, ok := w.Content.(*Tabs); ok {
		if t.Cycle(delta) {
			w.scroll = 0
			return true
		}
	}
	return false
}

// SelectTab shows the panel labelled label.
func (w *Window) SelectTab(label string) bool {
	t, ok := w.Content.(*Tabs)
	if !ok || !t.SetActive(label) {
		return false
	}
	w.scroll = 0
	return true
}

// Scrollable reports whether the content scrolls.
func (w *Window) Scrollable() bool { return w.decor.Has(DecorScroll) }

// ScrollOffset returns the first visible content line.
func (w *Window) ScrollOffset() int { return w.scroll }

// ScrollBy scrolls the content by delta lines.
func (w *Window) ScrollBy(delta int) bool {
	if !w.Scrollable() {
		return false
	}
	next := min(max(w.scroll+delta, 0), w.maxScroll)
	if next == w.scroll {
		return false
	}
	w.scroll = next
	return true
}

func (w *Window) tabRows() int {
	if _, ok := w.Content.(*Tabs); ok {
		return config.TabBarRows
	}
	return 0
}

// Bounds returns the frame rectangle inside container, chrome included.
// Expanded windows fill the container.
func (w *Window) Bounds(container Rect) Rect {
	if w.expanded {
		return container
	}
	p := w.pos.Get()
	if w.offset {
		p.Y += config.MetaOffsetRows
	}
	s := w.size.Get()
	return Rect{
		X: container.X + p.X,
		Y: container.Y + p.Y,
		W: s.W + config.ChromeCols,
		H: s.H + config.ChromeRows + w.tabRows(),
	}
}

// ContentRect returns the rectangle the content block is drawn in.
func (w *Window) ContentRect(container Rect) Rect {
	b := w.Bounds(container)
	top := 1 + w.tabRows()
	return Rect{
		X: b.X + 1,
		Y: b.Y + top,
		W: max(b.W-config.ChromeCols, 0),
		H: max(b.H-config.ChromeRows-w.tabRows(), 0),
	}
}

// TabBarRect returns the tab strip rectangle, empty for page content.
func (w *Window) TabBarRect(container Rect) Rect {
	if w.tabRows() == 0 {
		return Rect{}
	}
	b := w.Bounds(container)
	return Rect{X: b.X + 1, Y: b.Y + 1, W: max(b.W-config.ChromeCols, 0), H: config.TabBarRows}
}
