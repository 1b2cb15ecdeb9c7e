package desktop

import (
	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/theme"
	"github.com/etbcor/tomo/internal/window"
)

// ChatWidth is the text width of a chat bubble, in cells.
const ChatWidth = 44

// ChatEnd selects what a chat does after its last message.
type ChatEnd int

const (
	// ChatLeave navigates away and goes quiet.
	ChatLeave ChatEnd = iota
	// ChatRepeat shows a closing word once, then starts over.
	ChatRepeat
)

// ChatDone is the closing word of a repeating chat.
const ChatDone = "pini"

// Chat is a scripted speech bubble advanced one message per click.
type Chat struct {
	env     *Env
	speaker string
	lines   []string
	idx     int
	end     ChatEnd
	target  string
}

// Message returns the current message. It is empty once a leaving chat is
// over.
func (c *Chat) Message() string {
	if c.idx < len(c.lines) {
		return c.lines[c.idx]
	}
	if c.end == ChatRepeat && c.idx == len(c.lines) {
		return ChatDone
	}
	return ""
}

// Index returns the position in the script.
func (c *Chat) Index() int { return c.idx }

// Next advances the chat.
func (c *Chat) Next() {
	switch c.end {
	case ChatLeave:
		if c.idx < len(c.lines) {
			c.idx++
			if c.idx == len(c.lines) {
				c.env.navigate(c.target)
			}
		}
	case ChatRepeat:
		c.idx++
		if c.idx > len(c.lines) {
			c.idx = 0
		}
	}
}

// Render draws the bubble, or nothing when there is no message.
func (c *Chat) Render() string {
	msg := c.Message()
	if msg == "" {
		return ""
	}
	speaker := lipgloss.NewStyle().Foreground(theme.ChatSpeaker()).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.ChatText()).Width(ChatWidth)
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ChatSpeaker()).
		Padding(0, 1)
	return bubble.Render(lipgloss.JoinVertical(lipgloss.Left,
		speaker.Render(c.speaker),
		text.Render(msg),
	))
}

// Bounds returns where the bubble sits in area: centered horizontally, a
// third of the way down.
func (c *Chat) Bounds(area window.Rect) window.Rect {
	s := c.Render()
	if s == "" {
		return window.Rect{}
	}
	w, h := lipgloss.Width(s), lipgloss.Height(s)
	return window.Rect{
		X: area.X + max((area.W-w)/2, 0),
		Y: area.Y + max((area.H-h)/3, 0),
		W: w,
		H: h,
	}
}

var pakalaScript = []string{
	"a. toki. sina seme",
	"mi 󱤌󱥧󱤅󱤽︀anu jan[ijotananpananpa]",
	"ken la sina toki: te mi lon seme to",
	"pona. sina lukin ala lukin e nanpa-suli ni<",
	"ona li lon sewi-mi. mi-tu li lon(anpaona)",
	"mi tan ni a. nimi-mi kin",
	"a. sina pakala e ilo anu seme",
	"ale li pona. mi ken pona e ilo",
	"mi pali. o awen-lili",
	"pona. mi sin e ilo",
	"o tawa pona",
	"ale li pona",
}

var anpaNanpaScript = []string{
	"a. toki. sina seme",
	"mi ijo tan anpa nanpa",
}

// Pakala builds /pakala, where the stack overflow leads. A voice from below
// talks the visitor back home.
func Pakala(env *Env) *Page {
	p := newPage("/pakala", 0)
	p.Wallpaper = WallpaperBlack
	p.Chat = &Chat{env: env, speaker: "ijo", lines: pakalaScript, end: ChatLeave, target: "/"}
	p.Footer = footer.New()
	p.Footer.SetMarker("nasa")
	return p
}

// AnpaNanpa builds /tp/anpa_nanpa, a short loop with the same voice.
func AnpaNanpa(env *Env) *Page {
	p := newPage("/tp/anpa_nanpa", 0)
	p.Wallpaper = WallpaperBlack
	p.Chat = &Chat{env: env, speaker: "ijo", lines: anpaNanpaScript, end: ChatRepeat}
	loading := newLoadingWindow(env, p.at(20, 20, 225, 170), LoadingTP)
	p.add(loading)
	p.Footer = footer.New(footer.Item{Label: `"Inspiration"`, Hidden: loading.HiddenCell()})
	return p
}
