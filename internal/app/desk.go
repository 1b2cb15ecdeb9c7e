// Package app implements the tomo desktop program: the bubbletea model that
// owns the current page and routes navigation, ticks and input into it.
package app

import (
	"context"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/etbcor/tomo/internal/analytics"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/content"
	"github.com/etbcor/tomo/internal/desktop"
	"github.com/etbcor/tomo/internal/logging"
	"github.com/etbcor/tomo/internal/sysinfo"
	"github.com/etbcor/tomo/internal/window"
)

var logger = logging.For("app")

// Options configures a Desk.
type Options struct {
	Context context.Context
	Store   *content.Store
	Config  *config.UserConfig
	// Path is the first page shown. Empty means home.
	Path    string
	Beacon  *analytics.Beacon
	// Sampler feeds the footer status. The desk reads it and never samples.
	Sampler *sysinfo.Sampler
	// SessionID names the desktop in logs and beacons. A random id is used
	// when empty.
	SessionID string
	Rand      *rand.Rand
}

// Desk is one desktop: the page shown, the window with keyboard focus, the
// drag in progress and the overlays drawn above the page.
type Desk struct {
	Width  int
	Height int

	Page      *desktop.Page
	SessionID string

	// Focused is the window keys go to. It may belong to a nested page.
	Focused *window.Window
	Drag    window.Tracker

	Notifications   []Notification
	Launcher        *Launcher
	ShowHelp        bool
	KeybindRegistry *config.KeybindRegistry

	ctx      context.Context
	env      *desktop.Env
	store    *content.Store
	beacon   *analytics.Beacon
	sampler  *sysinfo.Sampler
	// contentSeq is the store reload last reported to the user.
	contentSeq uint64

	pending    string
	hasPending bool
}

// New creates a desktop showing opts.Path.
func New(opts Options) *Desk {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	d := &Desk{
		SessionID:       opts.SessionID,
		KeybindRegistry: config.NewKeybindRegistry(opts.Config),
		ctx:             opts.Context,
		store:           opts.Store,
		beacon:          opts.Beacon,
		sampler:         opts.Sampler,
	}
	if opts.Store != nil {
		d.contentSeq, _ = opts.Store.Changes()
	}
	d.env = &desktop.Env{
		Store:    opts.Store,
		Navigate: d.RequestNavigation,
		External: d.OpenExternal,
		Rand:     opts.Rand,
	}
	d.Launcher = NewLauncher()
	d.load(opts.Path)
	return d
}

// Env returns the environment pages are built with.
func (d *Desk) Env() *desktop.Env { return d.env }

// RequestNavigation schedules a route change. It takes effect once the
// current event has been handled, so a page is never replaced while one of
// its windows is still handling input.
func (d *Desk) RequestNavigation(path string) {
	d.pending = path
	d.hasPending = true
}

// PendingNavigation returns the scheduled route, if any.
func (d *Desk) PendingNavigation() (string, bool) {
	return d.pending, d.hasPending
}

// ApplyNavigation performs a scheduled route change and returns the command
// reporting the page view.
func (d *Desk) ApplyNavigation() tea.Cmd {
	if !d.hasPending {
		return nil
	}
	path := d.pending
	d.pending, d.hasPending = "", false
	return d.Navigate(path)
}

// Navigate replaces the page immediately.
func (d *Desk) Navigate(path string) tea.Cmd {
	d.load(path)
	return d.beaconCmd()
}

func (d *Desk) load(path string) {
	d.Drag.End()
	d.Focused = nil
	d.Page = desktop.Build(d.env, desktop.Clean(path))
	d.updateStatus()
	logger.Info("page loaded", "path", d.Page.Path, "session", d.SessionID)
}

// Area returns the rectangle the page's windows are laid out in.
func (d *Desk) Area() window.Rect {
	return d.Page.Area(d.Width, d.Height)
}

// FocusedWindow returns the focused window, or nil when it has been closed.
func (d *Desk) FocusedWindow() *window.Window {
	if d.Focused == nil || d.Focused.Hidden() {
		return nil
	}
	return d.Focused
}

// FocusWindow gives w keyboard focus and raises it.
func (d *Desk) FocusWindow(w *window.Window) {
	d.Focused = w
	if w != nil {
		w.Focus()
	}
}

// CycleFocus moves keyboard focus through the page's visible windows in
// construction order.
func (d *Desk) CycleFocus(delta int) {
	ring := d.Page.FocusRing()
	if len(ring) == 0 {
		d.Focused = nil
		return
	}
	idx := -1
	for i, w := range ring {
		if w == d.Focused {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(ring) - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+delta)%len(ring) + len(ring)) % len(ring)
	}
	d.FocusWindow(ring[idx])
}

// RestoreAll un-hides every window listed in the footer.
func (d *Desk) RestoreAll() int {
	if d.Page.Footer == nil {
		return 0
	}
	return d.Page.Footer.RestoreAll()
}

// OpenExternal reports an external link as a notification carrying a
// terminal hyperlink.
func (d *Desk) OpenExternal(label, url string) {
	d.ShowNotification(NotifyLink, label, url)
	logger.Debug("external link", "label", label, "url", url)
}

func (d *Desk) updateStatus() {
	if d.Page == nil || d.Page.Footer == nil {
		return
	}
	if !config.ShowStatus || d.sampler == nil {
		d.Page.Footer.SetStatus("")
		return
	}
	d.Page.Footer.SetStatus(d.sampler.Status())
}
