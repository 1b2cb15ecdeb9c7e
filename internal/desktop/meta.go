package desktop

import (
	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/theme"
	"github.com/etbcor/tomo/internal/window"
)

// Sizes of a Meta window's content while showing the preview and the nested
// page.
var (
	MetaCollapsedSize = size(200, 437)
	MetaExpandedSize  = size(720, 844)
)

// Meta controls a window that shows the home page inside itself. Each level
// nests one deeper home page until StackOverflowLimit, past which the
// nested page is the stack overflow page.
type Meta struct {
	env        *Env
	recursions int
	cells      homeCells

	deeper *state.Cell[bool]
	size   *state.Cell[window.Size]
	hidden *state.Cell[bool]

	owner  *Page
	nested *Page
	window *window.Window
}

func newMeta(env *Env, owner *Page, recursions int, cells homeCells, z *state.Counter) *Meta {
	m := &Meta{
		env:        env,
		recursions: recursions,
		cells:      cells,
		deeper:     state.NewCell(false),
		size:       state.NewCell(MetaCollapsedSize),
		hidden:     cells.meta.hidden,
		owner:      owner,
	}
	m.window = window.New("meta-win", "Meta, man...", window.NewPage(&metaBody{m}),
		cells.meta.position(owner.Depth), m.size, m.hidden,
		window.WithZ(z),
		window.WithMinimize(m.deeper, m.size, MetaCollapsedSize),
		window.WithDecor(window.DecorRainbow),
	)
	owner.metas[m.window] = m
	return m
}

// Window returns the meta window.
func (m *Meta) Window() *window.Window { return m.window }

// Recursions returns the nesting level the meta window builds.
func (m *Meta) Recursions() int { return m.recursions }

// Deeper reports whether the nested page is shown instead of the preview.
func (m *Meta) Deeper() bool { return m.deeper.Get() }

// Expand switches from the preview to the nested page. Collapsing only
// happens through the minimize control.
func (m *Meta) Expand() bool {
	if m.deeper.Get() {
		return false
	}
	m.deeper.Set(true)
	m.size.Set(MetaExpandedSize)
	return true
}

// Nested returns the nested page, building it on first use.
func (m *Meta) Nested() *Page {
	if m.nested != nil {
		return m.nested
	}
	if m.recursions <= config.StackOverflowLimit {
		m.nested = buildHome(m.env, m.recursions, m.cells)
	} else {
		m.nested = buildOverflow(m.env, m.recursions, m.hidden)
		logger.Debug("meta recursion limit reached", "recursions", m.recursions)
	}
	return m.nested
}

type metaBody struct{ m *Meta }

var metaPreview = []string{
	"╭───────────╮",
	"│ ╭───────╮ │",
	"│ │ ╭───╮ │ │",
	"│ │ │ ◉ │ │ │",
	"│ │ ╰───╯ │ │",
	"│ ╰───────╯ │",
	"╰───────────╯",
}

func (b *metaBody) Render(width, height int) string {
	if b.m.Deeper() {
		return b.m.Nested().Render(width, height, b.m.owner.focused)
	}
	art := lipgloss.NewStyle().Foreground(theme.TitlePrefix())
	hint := lipgloss.NewStyle().Foreground(theme.TitleText()).Italic(true)
	lines := make([]string, 0, len(metaPreview)+2)
	for _, l := range metaPreview {
		lines = append(lines, art.Render(l))
	}
	lines = append(lines, "", hint.Render("o tawa insa"))
	return centered(width, height, lines...)
}

func (b *metaBody) Activate() bool { return b.m.Expand() }

func (b *metaBody) Click(window.Pos) bool { return b.m.Expand() }

// buildOverflow builds the page shown past the recursion limit: a single
// loading window that closes together with the meta window and leads to
// /pakala.
func buildOverflow(env *Env, depth int, hidden *state.Cell[bool]) *Page {
	p := newPage("/", depth)
	s := p.at(20, 55, 300, 100)
	s.hidden = hidden
	p.add(newLoadingWindow(env, s, LoadingStackOverflow))
	return p
}
