package app

import (
	"cmp"
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/desktop"
	"github.com/etbcor/tomo/internal/theme"
)

// LauncherRows is the number of matches the launcher lists.
const LauncherRows = 8

// Launcher is the fuzzy page picker.
type Launcher struct {
	Open bool

	input    textinput.Model
	routes   []desktop.Route
	matches  []desktop.Route
	selected int
}

// NewLauncher returns a closed launcher over the route table.
func NewLauncher() *Launcher {
	ti := textinput.New()
	ti.Placeholder = "page or path"
	ti.Prompt = "› "
	ti.CharLimit = 64
	l := &Launcher{input: ti, routes: desktop.Routes()}
	l.filter()
	return l
}

// Show opens the launcher with an empty query.
func (l *Launcher) Show() tea.Cmd {
	l.Open = true
	l.input.Reset()
	l.filter()
	return l.input.Focus()
}

// Hide closes the launcher.
func (l *Launcher) Hide() {
	l.Open = false
	l.input.Blur()
}

// Query returns the typed text.
func (l *Launcher) Query() string { return strings.TrimSpace(l.input.Value()) }

// SetQuery replaces the typed text.
func (l *Launcher) SetQuery(q string) {
	l.input.SetValue(q)
	l.filter()
}

// Matches returns the routes matching the query, best first.
func (l *Launcher) Matches() []desktop.Route { return l.matches }

// Selected returns the highlighted match.
func (l *Launcher) Selected() (desktop.Route, bool) {
	if l.selected < 0 || l.selected >= len(l.matches) {
		return desktop.Route{}, false
	}
	return l.matches[l.selected], true
}

// Move moves the highlight, wrapping around.
func (l *Launcher) Move(delta int) {
	if n := len(l.matches); n > 0 {
		l.selected = ((l.selected+delta)%n + n) % n
	}
}

// Choice returns the path Enter opens: the highlighted match, or the typed
// path itself when nothing matches.
func (l *Launcher) Choice() (string, bool) {
	if r, ok := l.Selected(); ok {
		return r.Path, true
	}
	if q := l.Query(); strings.HasPrefix(q, "/") {
		return q, true
	}
	return "", false
}

// Update handles a key while the launcher is open. It returns the path to
// open once a choice is made.
func (l *Launcher) Update(msg tea.KeyPressMsg) (path string, chosen bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		l.Hide()
		return "", false, nil
	case "enter":
		path, ok := l.Choice()
		l.Hide()
		return path, ok, nil
	case "up", "ctrl+p", "shift+tab":
		l.Move(-1)
		return "", false, nil
	case "down", "ctrl+n", "tab":
		l.Move(1)
		return "", false, nil
	}
	l.input, cmd = l.input.Update(msg)
	l.filter()
	return "", false, cmd
}

func (l *Launcher) filter() {
	l.selected = 0
	q := strings.ToLower(l.Query())
	if q == "" {
		l.matches = append(l.matches[:0], l.routes...)
		return
	}
	ranked := make([]routeMatch, 0, len(l.routes))
	for _, r := range l.routes {
		if m, ok := matchRoute(q, r); ok {
			ranked = append(ranked, m)
		}
	}
	slices.SortStableFunc(ranked, func(a, b routeMatch) int {
		return cmp.Or(cmp.Compare(a.tier, b.tier), cmp.Compare(a.start, b.start), cmp.Compare(a.dist, b.dist))
	})
	l.matches = l.matches[:0]
	for _, m := range ranked {
		l.matches = append(l.matches, m.route)
	}
}

// Match tiers, best first.
const (
	matchWord = iota
	matchSubstring
	matchFuzzy
)

type routeMatch struct {
	route desktop.Route
	tier  int
	start int
	dist  int
}

// matchRoute ranks r's path and title against the lowercased query q and
// keeps the better of the two. Hits at a word start beat hits inside a
// word, which beat scattered fuzzy hits.
func matchRoute(q string, r desktop.Route) (routeMatch, bool) {
	best := routeMatch{route: r, tier: -1}
	for _, field := range []string{strings.ToLower(r.Path), strings.ToLower(r.Title)} {
		m := routeMatch{route: r, start: strings.Index(field, q)}
		switch {
		case m.start >= 0 && wordStart(field, m.start):
			m.tier = matchWord
		case m.start >= 0:
			m.tier = matchSubstring
		case fuzzy.MatchNormalizedFold(q, field):
			m.tier, m.start = matchFuzzy, 0
		default:
			continue
		}
		m.dist = fuzzy.LevenshteinDistance(q, field)
		if best.tier < 0 || m.tier < best.tier || (m.tier == best.tier && m.start < best.start) {
			best = m
		}
	}
	return best, best.tier >= 0
}

func wordStart(s string, i int) bool {
	return i == 0 || strings.ContainsRune("/ _-", rune(s[i-1]))
}

// Render draws the launcher box width cells wide.
func (l *Launcher) Render(width int) string {
	width = max(width, 24)
	title := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	path := lipgloss.NewStyle().Foreground(theme.Link())
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())
	current := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(theme.LinkSelected())

	lines := []string{title.Render("Go to page"), l.input.View(), ""}
	for i, r := range l.matches {
		if i >= LauncherRows {
			break
		}
		t := ansi.Truncate(r.Title, max(width-6-ansi.StringWidth(r.Path), 0), "…")
		if i == l.selected {
			lines = append(lines, current.Render(r.Path+"  "+t))
		} else {
			lines = append(lines, path.Render(r.Path)+"  "+dim.Render(t))
		}
	}
	if len(l.matches) == 0 {
		hint := "no match"
		if strings.HasPrefix(l.Query(), "/") {
			hint = "enter opens " + l.Query()
		}
		lines = append(lines, dim.Render(hint))
	}

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
