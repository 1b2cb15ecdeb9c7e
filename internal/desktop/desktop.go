// Package desktop builds the pages of the portfolio: which windows a route
// shows, where they start, what they contain and how a page is drawn and
// hit-tested, nested pages included.
package desktop

import (
	"math"
	"math/rand/v2"
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/content"
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/logging"
	"github.com/etbcor/tomo/internal/pool"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/window"
)

var logger = logging.For("desktop")

// Env is what page constructors need from the program hosting them.
type Env struct {
	Store *content.Store
	// Navigate requests a route change. It is applied after the current
	// event has been handled.
	Navigate func(path string)
	// External is called when an external link is activated.
	External func(label, url string)
	Rand     *rand.Rand
}

func (e *Env) navigate(path string) {
	if e.Navigate != nil {
		e.Navigate(path)
	}
}

func (e *Env) intN(n int) int {
	if e.Rand != nil {
		return e.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// handlers returns link handlers that open files in file (when not nil),
// navigate routes and report external links.
func (e *Env) handlers(file *state.Cell[FileSource]) content.Handlers {
	h := content.Handlers{
		Route: e.navigate,
		External: func(label, url string) {
			if e.External != nil {
				e.External(label, url)
			}
		},
	}
	if file != nil {
		h.File = func(label, url string) { file.Set(FileSource{Label: label, URL: url}) }
	}
	return h
}

// cells converts a layout position of the web site into cells.
func cells(x, y int) window.Pos {
	return window.Pos{
		X: int(math.Round(float64(x) / config.PxPerCol)),
		Y: int(math.Round(float64(y) / config.PxPerRow)),
	}
}

// size converts a layout size of the web site into cells.
func size(w, h int) window.Size {
	p := cells(w, h)
	return window.Size{W: max(p.X, 1), H: max(p.Y, 1)}
}

// Page is one instantiated route: its windows, footer and stacking counter.
// Nested pages inside a Meta window have no footer and no counter.
type Page struct {
	Path      string
	Windows   []*window.Window
	Footer    *footer.Footer
	Z         *state.Counter
	Depth     int
	Wallpaper Wallpaper
	Chat      *Chat

	metas   map[*window.Window]*Meta
	focused *window.Window
}

func newPage(path string, depth int) *Page {
	p := &Page{Path: path, Depth: depth, metas: map[*window.Window]*Meta{}}
	if depth == 0 {
		p.Z = state.NewCounter(1)
	}
	return p
}

func (p *Page) add(ws ...*window.Window) {
	p.Windows = append(p.Windows, ws...)
}

// Window returns the window with the given id.
func (p *Page) Window(id string) *window.Window {
	for _, w := range p.Windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Meta returns the Meta controller of w, or nil.
func (p *Page) Meta(w *window.Window) *Meta { return p.metas[w] }

// Area returns the rectangle windows are laid out in for a page drawn at
// width by height. The footer takes the last row.
func (p *Page) Area(width, height int) window.Rect {
	if p.Footer != nil {
		height -= config.FooterHeight
	}
	return window.Rect{W: width, H: max(height, 0)}
}

// Stack returns the visible windows back to front. Windows with equal
// stacking values keep construction order.
func (p *Page) Stack() []*window.Window {
	out := make([]*window.Window, 0, len(p.Windows))
	for _, w := range p.Windows {
		if !w.Hidden() {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z() < out[j].Z() })
	return out
}

// Top returns the front-most visible window.
func (p *Page) Top() *window.Window {
	s := p.Stack()
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// FocusRing returns the visible windows in construction order, the order
// keyboard focus cycles through.
func (p *Page) FocusRing() []*window.Window {
	var out []*window.Window
	for _, w := range p.Windows {
		if !w.Hidden() {
			out = append(out, w)
		}
	}
	return out
}

// Layers returns the page drawn at width by height as canvas layers: the
// wallpaper, every visible window clipped to the page, the chat bubble and
// the footer.
func (p *Page) Layers(width, height int, focused *window.Window) []*lipgloss.Layer {
	p.focused = focused
	area := p.Area(width, height)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(p.Wallpaper.Render(width, height)).X(0).Y(0).Z(config.ZIndexWallpaper).ID("wallpaper"),
	}
	if p.Chat != nil {
		b := p.Chat.Bounds(area)
		if s, x, y := window.Clip(p.Chat.Render(), b.X, b.Y, area.W, area.H); s != "" {
			layers = append(layers, lipgloss.NewLayer(s).X(x).Y(y).Z(0).ID("chat"))
		}
	}
	for i, w := range p.Stack() {
		b := w.Bounds(area)
		s, x, y := window.Clip(w.Render(area, w == focused), b.X, b.Y, area.W, area.H)
		if s == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(s).X(x).Y(y).Z(i+1).ID(w.ID))
	}
	if p.Footer != nil {
		layers = append(layers, lipgloss.NewLayer(p.Footer.Render(width)).
			X(0).Y(height-config.FooterHeight).Z(config.ZIndexFooter).ID("footer"))
	}
	return layers
}

// Render draws the page into a string of exactly width by height cells.
func (p *Page) Render(width, height int, focused *window.Window) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	layersPtr := pool.GetLayerSlice()
	defer pool.PutLayerSlice(layersPtr)
	layers := append(*layersPtr, p.Layers(width, height, focused)...)

	canvas := lipgloss.NewCanvas()
	canvas.AddLayers(layers...)
	return canvas.Render()
}

// Target is what a pointer landed on.
type Target struct {
	// Page owns the hit window. It is a nested page for hits inside an
	// expanded Meta window.
	Page   *Page
	Window *window.Window
	Hit    window.Hit
	// Origin is the absolute position of Page's window area, for
	// translating pointers into the page's coordinates.
	Origin window.Pos

	Chat    bool
	Footer  bool
	Segment footer.Segment
}

// HitTest finds what is under pt for a page drawn at width by height.
// Points inside an expanded Meta window are resolved against its nested
// page first.
func (p *Page) HitTest(pt window.Pos, width, height int) (Target, bool) {
	if p.Footer != nil && pt.Y == height-config.FooterHeight {
		seg, ok := p.Footer.At(pt.X, width)
		return Target{Page: p, Footer: true, Segment: seg}, ok
	}
	area := p.Area(width, height)

	stack := p.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		hit := w.HitTest(pt, area)
		if hit.Kind == window.HitNone {
			continue
		}
		if m := p.metas[w]; hit.Kind == window.HitContent && m != nil && m.Deeper() {
			c := w.ContentRect(area)
			if t, ok := m.Nested().HitTest(hit.Local, c.W, c.H); ok {
				t.Origin = t.Origin.Add(c.Origin())
				return t, true
			}
		}
		return Target{Page: p, Window: w, Hit: hit}, true
	}

	if p.Chat != nil && p.Chat.Bounds(area).Contains(pt) {
		return Target{Page: p, Chat: true}, true
	}
	return Target{Page: p}, false
}
