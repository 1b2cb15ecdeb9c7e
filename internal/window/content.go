package window

import (
	"github.com/etbcor/tomo/internal/state"
)

// Block is an opaque piece of content laid out inside a window's content
// panel. Render must return at most height lines when the window does not
// scroll; extra lines are clipped.
type Block interface {
	Render(width, height int) string
}

// BlockFunc adapts a function to Block.
type BlockFunc func(width, height int) string

// Render calls f.
func (f BlockFunc) Render(width, height int) string { return f(width, height) }

// Activator is implemented by blocks that react to Enter.
type Activator interface {
	Activate() bool
}

// Clicker is implemented by blocks that react to a click. p is relative to
// the content panel.
type Clicker interface {
	Click(p Pos) bool
}

// Selector is implemented by blocks with a movable selection, such as link
// lists.
type Selector interface {
	Select(delta int) bool
}

// Content is either a *Page or a *Tabs.
type Content interface {
	isContent()
}

// Page is a single content panel.
type Page struct {
	Body Block
}

// NewPage wraps body as window content.
func NewPage(body Block) *Page { return &Page{Body: body} }

func (*Page) isContent() {}

// Panel is one labeled tab of a Tabs content.
type Panel struct {
	Label string
	Body  Block
}

// Tabs is a labeled set of panels with exactly one active label.
type Tabs struct {
	Active *state.Cell[string]
	Panels []Panel
}

// NewTabs creates tab content with active selected. An unknown active label
// falls back to the first panel.
func NewTabs(active string, panels ...Panel) *Tabs {
	t := &Tabs{Panels: panels}
	if t.index(active) < 0 && len(panels) > 0 {
		active = panels[0].Label
	}
	t.Active = state.NewCell(active)
	return t
}

func (*Tabs) isContent() {}

func (t *Tabs) index(label string) int {
	for i, p := range t.Panels {
		if p.Label == label {
			return i
		}
	}
	return -1
}

// Labels returns the tab labels in order.
func (t *Tabs) Labels() []string {
	labels := make([]string, len(t.Panels))
	for i, p := range t.Panels {
		labels[i] = p.Label
	}
	return labels
}

// SetActive makes label the active tab. It returns false when label is
// unknown or already active.
func (t *Tabs) SetActive(label string) bool {
	if t.index(label) < 0 || t.Active.Get() == label {
		return false
	}
	t.Active.Set(label)
	return true
}

// Visible reports whether the panel named label is the one shown.
func (t *Tabs) Visible(label string) bool {
	return t.Active.Get() == label
}

// ActivePanel returns the shown panel.
func (t *Tabs) ActivePanel() (Panel, bool) {
	i := t.index(t.Active.Get())
	if i < 0 {
		return Panel{}, false
	}
	return t.Panels[i], true
}

// Cycle moves the active tab by delta, wrapping around.
func (t *Tabs) Cycle(delta int) bool {
	n := len(t.Panels)
	if n < 2 {
		return false
	}
	i := t.index(t.Active.Get())
	if i < 0 {
		i = 0
	}
	return t.SetActive(t.Panels[((i+delta)%n+n)%n].Label)
}

// activeBody returns the block currently shown by c.
func activeBody(c Content) Block {
	switch c := c.(type) {
	case *Page:
		return c.Body
	case *Tabs:
		if p, ok := c.ActivePanel(); ok {
			return p.Body
		}
	}
	return nil
}
