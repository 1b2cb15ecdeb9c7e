package content

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/theme"
	"github.com/etbcor/tomo/internal/window"
)

// LinkKind is what selecting a link does.
type LinkKind int

const (
	LinkText LinkKind = iota
	LinkExternal
	LinkFile
	LinkRoute
)

// Link is one entry of a link list.
type Link struct {
	Label   string `yaml:"label"`
	URL     string `yaml:"url,omitempty"`
	File    string `yaml:"file,omitempty"`
	Route   string `yaml:"route,omitempty"`
	Indent  int    `yaml:"indent,omitempty"`
	Heading bool   `yaml:"heading,omitempty"`
}

// Kind classifies the link by its target. A route wins over a file, and a
// file over a url.
func (l Link) Kind() LinkKind {
	switch {
	case l.Route != "":
		return LinkRoute
	case l.File != "":
		return LinkFile
	case l.URL != "":
		return LinkExternal
	}
	return LinkText
}

// Target returns the path or URL the link points at.
func (l Link) Target() string {
	switch l.Kind() {
	case LinkRoute:
		return l.Route
	case LinkFile:
		return l.File
	}
	return l.URL
}

// Handlers receive activated links. Nil handlers ignore their kind.
type Handlers struct {
	External func(label, url string)
	File     func(label, url string)
	Route    func(path string)
}

func (h Handlers) dispatch(l Link) bool {
	switch l.Kind() {
	case LinkExternal:
		if h.External != nil {
			h.External(l.Label, l.URL)
			return true
		}
	case LinkFile:
		if h.File != nil {
			h.File(l.Label, l.File)
			return true
		}
	case LinkRoute:
		if h.Route != nil {
			h.Route(l.Route)
			return true
		}
	}
	return false
}

// Document is a window block made of an optional markdown block followed by
// an optional link list. The link list has a selection that moves between
// actionable entries.
type Document struct {
	store    *Store
	block    string
	list     string
	handlers Handlers

	selected int
	header   int // rendered markdown lines at the last Render
}

// Document creates a block showing the markdown called block above the link
// list called list. Either may be empty.
func (s *Store) Document(block, list string, h Handlers) *Document {
	return &Document{store: s, block: block, list: list, handlers: h, selected: -1}
}

// Block returns a markdown-only block.
func (s *Store) Block(name string) *Document {
	return s.Document(name, "", Handlers{})
}

// LinkList returns a list-only block.
func (s *Store) LinkList(name string, h Handlers) *Document {
	return s.Document("", name, h)
}

func (d *Document) links() []Link {
	if d.list == "" {
		return nil
	}
	l, err := d.store.Links(d.list)
	if err != nil {
		logger.Warn("missing link list", "name", d.list, "err", err)
		return nil
	}
	return l
}

// Render draws the document for a panel of the given size.
func (d *Document) Render(width, height int) string {
	var parts []string
	d.header = 0
	if d.block != "" {
		md, err := d.store.Render(d.block, width)
		if err != nil {
			md = lipgloss.NewStyle().Foreground(theme.NotificationError()).Render(err.Error())
		}
		parts = append(parts, md)
		d.header = strings.Count(md, "\n") + 1
	}
	if links := d.links(); len(links) > 0 {
		if d.header > 0 {
			parts = append(parts, "")
			d.header++
		}
		parts = append(parts, renderLinks(links, d.selected, width))
	}
	return strings.Join(parts, "\n")
}

func renderLinks(links []Link, selected, width int) string {
	plain := lipgloss.NewStyle().Foreground(theme.WindowFg())
	link := lipgloss.NewStyle().Foreground(theme.Link()).Underline(true)
	current := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(theme.LinkSelected())

	lines := make([]string, len(links))
	for i, l := range links {
		indent := strings.Repeat("  ", l.Indent+1)
		label := l.Label
		if l.Kind() == LinkExternal {
			label += " ↗"
		}
		label = ansi.Truncate(label, max(width-len(indent), 0), "…")

		style := plain
		switch {
		case i == selected:
			style = current
		case l.Kind() != LinkText:
			style = link
		}
		if l.Heading {
			style = style.Bold(true)
		}
		lines[i] = indent + style.Render(label)
	}
	return strings.Join(lines, "\n")
}

func actionable(l Link) bool { return l.Kind() != LinkText }

// Selected returns the selected link.
func (d *Document) Selected() (Link, bool) {
	links := d.links()
	if d.selected < 0 || d.selected >= len(links) {
		return Link{}, false
	}
	return links[d.selected], true
}

// Select moves the selection by delta actionable links, wrapping around.
func (d *Document) Select(delta int) bool {
	links := d.links()
	var idx []int
	for i, l := range links {
		if actionable(l) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 || delta == 0 {
		return false
	}
	pos := -1
	for i, li := range idx {
		if li == d.selected {
			pos = i
		}
	}
	if pos < 0 {
		if delta > 0 {
			pos = -1
		} else {
			pos = 0
		}
	}
	next := idx[((pos+delta)%len(idx)+len(idx))%len(idx)]
	if next == d.selected {
		return false
	}
	d.selected = next
	return true
}

// Activate runs the handler of the selected link, or of the first actionable
// link when nothing is selected yet.
func (d *Document) Activate() bool {
	if d.selected < 0 && !d.Select(1) {
		return false
	}
	l, ok := d.Selected()
	if !ok {
		return false
	}
	return d.handlers.dispatch(l)
}

// Click selects and activates the link on the clicked line.
func (d *Document) Click(p window.Pos) bool {
	i := p.Y - d.header
	links := d.links()
	if i < 0 || i >= len(links) || !actionable(links[i]) {
		return false
	}
	d.selected = i
	return d.handlers.dispatch(links[i])
}
