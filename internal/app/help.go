package app

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/theme"
)

// helpKeys adapts the keybinding sections to the bubbles help model.
type helpKeys struct {
	sections []config.KeybindingSection
}

func newHelpKeys(registry *config.KeybindRegistry) helpKeys {
	return helpKeys{sections: config.GetKeybindings(registry)}
}

func bindings(section config.KeybindingSection) []key.Binding {
	out := make([]key.Binding, 0, len(section.Bindings))
	for _, b := range section.Bindings {
		out = append(out, key.NewBinding(key.WithKeys(b.Key), key.WithHelp(b.Key, b.Description)))
	}
	return out
}

// ShortHelp returns the desktop bindings.
func (k helpKeys) ShortHelp() []key.Binding {
	if len(k.sections) == 0 {
		return nil
	}
	return bindings(k.sections[0])
}

// FullHelp returns one column per section.
func (k helpKeys) FullHelp() [][]key.Binding {
	cols := make([][]key.Binding, 0, len(k.sections))
	for _, s := range k.sections {
		cols = append(cols, bindings(s))
	}
	return cols
}

// RenderHelp draws the help overlay for the configured keybindings.
func (d *Desk) RenderHelp() string {
	keys := newHelpKeys(d.KeybindRegistry)

	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.WindowFg())
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.HelpGray())

	titles := make([]string, len(keys.sections))
	for i, s := range keys.sections {
		titles[i] = s.Title
	}
	title := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray()).Italic(true)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title.Render("tomo · "+strings.Join(titles, " / ")),
		"",
		h.View(keys),
		"",
		dim.Render("press ? or esc to close"),
	)
	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(body)
}
