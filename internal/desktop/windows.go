package desktop

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/theme"
	"github.com/etbcor/tomo/internal/window"
)

// slot is where and how a window starts on a page.
type slot struct {
	pos    window.Position
	size   window.Size
	hidden *state.Cell[bool]
	z      *state.Counter
}

func (s slot) new(id, title string, c window.Content, opts ...window.Option) *window.Window {
	hidden := s.hidden
	if hidden == nil {
		hidden = state.NewCell(false)
	}
	opts = append([]window.Option{window.WithZ(s.z)}, opts...)
	return window.New(id, title, c, s.pos, state.NewCell(s.size), hidden, opts...)
}

// at returns a slot at a fixed layout position of the web site, stacked by
// p's counter.
func (p *Page) at(x, y, w, h int) slot {
	pos := cells(x, y)
	return slot{pos: window.At(pos.X, pos.Y), size: size(w, h), hidden: state.NewCell(false), z: p.Z}
}

func centered(width, height int, lines ...string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// LoadingVariant selects the title and target of a loading window.
type LoadingVariant int

const (
	LoadingDefault LoadingVariant = iota
	LoadingHomePageLink
	LoadingPageComingSoon
	LoadingPageNotFound
	LoadingStackOverflow
	LoadingTP
)

// AbstractNouns are the words loading windows are titled with.
var AbstractNouns = [...]string{
	"Joy", "Hope", "Love", "Peace", "Serenity", "Happiness", "Bliss", "Gratitude", "Contentment", "Harmony",
	"Beauty", "Abundance", "Faith", "Trust", "Wonder", "Inspiration", "Courage", "Freedom", "Unity",
	"Compassion", "Generosity", "Empathy", "Kindness", "Forgiveness", "Patience", "Respect", "Gentleness",
	"Humility", "Graciousness", "Acceptance", "Radiance", "Positivity", "Enthusiasm", "Laughter", "Elation",
	"Zeal", "Determination", "Confidence", "Belief", "Optimism", "Sincerity", "Hopefulness", "Foresight",
	"Integrity", "Authenticity", "Nobility", "Honesty", "Loyalty", "Resilience", "Appreciation", "Vitality",
	"Curiosity", "Imagination", "Wonderment", "Exploration", "Ingenuity", "Creativity", "Innovation",
	"Empowerment", "Success", "Satisfaction", "Fulfillment", "Excitement", "Thrill", "Delight",
	"Exhilaration", "Peacefulness", "Tranquility", "Stillness", "Clarity", "Serendipity", "Enlightenment",
	"Progress", "Growth", "Change", "Expansion", "Meaning", "Grace", "Blessing", "Brilliance", "Affection",
	"Warmth", "Caring", "Tenderness", "Nurturing", "Support", "Balance", "Moderation", "Simplicity",
	"Adaptability", "Flexibility", "Openness", "Belonging", "Ingenuity", "Mediation",
}

// Title returns the window title for v. noun is used by the variants that
// name one.
func (v LoadingVariant) Title(noun string) string {
	switch v {
	case LoadingHomePageLink:
		return "Obtain " + noun
	case LoadingPageComingSoon:
		return "Page Coming Soon"
	case LoadingPageNotFound:
		return "Page Not Found"
	case LoadingStackOverflow:
		return "Uh-oh! The stack overflowed"
	case LoadingTP:
		return "o pona"
	}
	return "Loading " + noun
}

// Target returns the route activating the window navigates to.
func (v LoadingVariant) Target() string {
	if v == LoadingStackOverflow {
		return "/pakala"
	}
	return "/"
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type loadingBody struct {
	env     *Env
	variant LoadingVariant
}

func (b *loadingBody) Render(width, height int) string {
	style := lipgloss.NewStyle().Foreground(theme.TitleText()).Bold(true)
	hint := lipgloss.NewStyle().Foreground(theme.TabInactive()).Italic(true)

	icon := "✿"
	switch b.variant {
	case LoadingDefault:
		frame := int(time.Now().UnixNano()/int64(config.LoadingFrameInterval)) % len(spinnerFrames)
		icon = spinnerFrames[frame]
	case LoadingStackOverflow:
		icon = "⚠"
	case LoadingPageNotFound:
		icon = "404"
	}
	if config.UseASCIIOnly && b.variant != LoadingPageNotFound {
		icon = "*"
	}
	return centered(width, height, style.Render(icon), hint.Render("ale li pona"))
}

func (b *loadingBody) Activate() bool {
	b.env.navigate(b.variant.Target())
	return true
}

func (b *loadingBody) Click(window.Pos) bool { return b.Activate() }

// newLoadingWindow creates a loading window. Every instance draws its own
// noun.
func newLoadingWindow(env *Env, s slot, v LoadingVariant) *window.Window {
	noun := AbstractNouns[env.intN(len(AbstractNouns))]
	body := &loadingBody{env: env, variant: v}
	return s.new("loading-win", v.Title(noun), window.NewPage(body),
		window.NotExpandable(), window.WithDecor(window.DecorRainbow))
}

type artBody struct {
	lines []string
	style lipgloss.Style
}

func (b artBody) Render(width, height int) string {
	rendered := make([]string, len(b.lines))
	for i, l := range b.lines {
		rendered[i] = b.style.Render(l)
	}
	return centered(width, height, rendered...)
}

func newAdWindow(s slot) *window.Window {
	body := artBody{
		lines: []string{"╭──────────────────╮", "│  UR AD HERE :^)  │", "╰──────────────────╯"},
		style: lipgloss.NewStyle().Foreground(theme.ButtonMinimize()).Bold(true),
	}
	return s.new("ad-win", "Advertisement", window.NewPage(body), window.NotExpandable())
}

func newJohnWindow(env *Env, s slot) *window.Window {
	body := env.Store.LinkList("john", env.handlers(nil))
	return s.new("john-win", "Johnvertisement", window.NewPage(body),
		window.NotExpandable(), window.WithDecor(window.DecorRainbow))
}

// Webring selects the ring a webring window links into.
type Webring int

const (
	WebringBucket Webring = iota
	WebringSikePona
)

func newWebringWindow(env *Env, s slot, ring Webring) *window.Window {
	id, title, list := "bucket-webring-win", "Bucket Webring", "webring-bucket"
	if ring == WebringSikePona {
		id, title, list = "sike-pona-webring-win", "sike pona", "webring-sike-pona"
	}
	body := env.Store.LinkList(list, env.handlers(nil))
	return s.new(id, title, window.NewPage(body), window.NotExpandable())
}

func newLonelyWindow(s slot) *window.Window {
	body := window.BlockFunc(func(int, int) string { return "" })
	return s.new("lonely-win", "A bit lonely...", window.NewPage(body), window.NotExpandable())
}

// linkBody is a big clickable icon that leads somewhere.
type linkBody struct {
	env      *Env
	icon     []string
	label    string
	target   string
	external bool
}

func (b *linkBody) Render(width, height int) string {
	icon := lipgloss.NewStyle().Foreground(theme.TitleText()).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.Link()).Underline(true)
	lines := make([]string, 0, len(b.icon)+2)
	for _, l := range b.icon {
		lines = append(lines, icon.Render(l))
	}
	text := b.label
	if b.external {
		text += " ↗"
	}
	lines = append(lines, "", label.Render(ansi.Truncate(text, width, "…")))
	return centered(width, height, lines...)
}

func (b *linkBody) Activate() bool {
	if b.external {
		if b.env.External != nil {
			b.env.External(b.label, b.target)
		}
		return true
	}
	b.env.navigate(b.target)
	return true
}

func (b *linkBody) Click(window.Pos) bool { return b.Activate() }

// Icons for link windows.
var (
	iconFile = []string{"┌─────┐╲", "│ ═══ │ ╲", "│ ═══ └──┤", "│ ═══════│", "└────────┘"}
	iconNote = []string{"  ♪ ♫", " ♫  ♪", "♪ ♫ ♪"}
	iconItan = []string{"╭─○─╮", "│ ▲ │", "╰─┴─╯"}
	iconGrid = []string{"▛▀▀▀▜", "▌ ◆ ▐", "▙▄▄▄▟"}
)

type linkWindow struct {
	id, title, label, target string
	icon                     []string
	external                 bool
	decor                    window.Decor
}

func newLinkWindow(env *Env, s slot, l linkWindow) *window.Window {
	decor := l.decor
	if decor&(window.DecorDiag|window.DecorDiagTP) == 0 {
		decor |= window.DecorRainbow
	}
	label := l.label
	if label == "" {
		label = l.title
	}
	body := &linkBody{env: env, icon: l.icon, label: label, target: l.target, external: l.external}
	return s.new(l.id, l.title, window.NewPage(body), window.NotExpandable(), window.WithDecor(decor))
}

// FileSource is the document shown by a page's file window.
type FileSource struct {
	Label string
	URL   string
}

type fileBody struct {
	env *Env
	src *state.Cell[FileSource]
}

func (b *fileBody) Render(width, height int) string {
	src := b.src.Get()
	if src.URL == "" {
		return centered(width, height, "nothing open")
	}
	title := lipgloss.NewStyle().Foreground(theme.TitleText()).Bold(true)
	hint := lipgloss.NewStyle().Foreground(theme.TabInactive()).Italic(true)
	link := lipgloss.NewStyle().Foreground(theme.Link()).Underline(true)

	url := ansi.Truncate(src.URL, max(width-2, 1), "…")
	return centered(width, height,
		title.Render(src.Label),
		"",
		ansi.SetHyperlink(src.URL)+link.Render(url)+ansi.ResetHyperlink(),
		"",
		hint.Render("enter or click to open in your browser"),
	)
}

func (b *fileBody) Activate() bool {
	src := b.src.Get()
	if src.URL == "" || b.env.External == nil {
		return false
	}
	b.env.External(src.Label, src.URL)
	return true
}

func (b *fileBody) Click(window.Pos) bool { return b.Activate() }

// newFileWindow creates the file viewer of a page. It starts hidden and
// expanded, and shows itself whenever src gets a document.
func newFileWindow(env *Env, s slot, src *state.Cell[FileSource]) *window.Window {
	if s.hidden == nil {
		s.hidden = state.NewCell(true)
	}
	w := s.new("file-win", "File Viewer", window.NewPage(&fileBody{env: env, src: src}), window.StartExpanded())
	src.Subscribe(func(f FileSource) {
		if f.URL != "" {
			w.Show()
			w.Focus()
		}
	})
	return w
}
