package input

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/window"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(msg tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Desktop
	d.Register("focus_next", handleFocusNext)
	d.Register("focus_prev", handleFocusPrev)
	d.Register("activate", handleActivate)
	d.Register("go_home", handleGoHome)
	d.Register("restore_all", handleRestoreAll)
	d.Register("open_launcher", handleOpenLauncher)
	d.Register("toggle_help", handleToggleHelp)
	d.Register("quit", handleQuit)

	// Focused window
	d.Register("close_window", onFocused(func(w *window.Window) bool { w.Close(); return true }))
	d.Register("toggle_expand", onFocused((*window.Window).ToggleExpand))
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("nudge_up", makeKeyHandler(window.KeyUp))
	d.Register("nudge_down", makeKeyHandler(window.KeyDown))
	d.Register("nudge_left", makeKeyHandler(window.KeyLeft))
	d.Register("nudge_right", makeKeyHandler(window.KeyRight))
	d.Register("next_tab", onFocused(func(w *window.Window) bool { return w.CycleTab(1) }))
	d.Register("prev_tab", onFocused(func(w *window.Window) bool { return w.CycleTab(-1) }))
	d.Register("scroll_up", onFocused(func(w *window.Window) bool { return w.ScrollBy(-ScrollStep) }))
	d.Register("scroll_down", onFocused(func(w *window.Window) bool { return w.ScrollBy(ScrollStep) }))
	d.Register("next_link", onFocused(func(w *window.Window) bool { return w.Select(1) }))
	d.Register("prev_link", onFocused(func(w *window.Window) bool { return w.Select(-1) }))
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, desk *app.Desk) (*app.Desk, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, desk)
	}
	return desk, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ScrollStep is the number of lines a scroll key or wheel notch moves.
const ScrollStep = 3

// onFocused adapts an operation on the focused window. Without a focused
// window the key does nothing.
func onFocused(op func(w *window.Window) bool) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
		if w := d.FocusedWindow(); w != nil {
			op(w)
		}
		return d, nil
	}
}

func makeKeyHandler(k window.Key) ActionHandler {
	return onFocused(func(w *window.Window) bool { return w.HandleKey(k) })
}

func handleMinimizeWindow(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	w := d.FocusedWindow()
	if w == nil {
		return d, nil
	}
	// Windows without a minimize override go to the footer.
	if !w.Minimize() {
		w.Close()
	}
	return d, nil
}

func handleFocusNext(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	d.CycleFocus(1)
	return d, nil
}

func handleFocusPrev(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	d.CycleFocus(-1)
	return d, nil
}

func handleActivate(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	if w := d.FocusedWindow(); w != nil {
		w.HandleKey(window.KeyEnter)
		return d, nil
	}
	if d.Page.Chat != nil {
		d.Page.Chat.Next()
	}
	return d, nil
}

func handleGoHome(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	d.RequestNavigation("/")
	return d, nil
}

func handleRestoreAll(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	if n := d.RestoreAll(); n > 0 {
		d.ShowNotification(app.NotifyInfo, restoredMessage(n), "")
	}
	return d, nil
}

func restoredMessage(n int) string {
	if n == 1 {
		return "1 window restored"
	}
	return fmt.Sprintf("%d windows restored", n)
}

func handleOpenLauncher(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	d.ShowHelp = false
	return d, d.Launcher.Show()
}

func handleToggleHelp(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	d.ShowHelp = !d.ShowHelp
	return d, nil
}

func handleQuit(_ tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	if d.ShowHelp {
		d.ShowHelp = false
		return d, nil
	}
	logger.Info("quit", "session", d.SessionID, "path", d.Page.Path)
	return d, tea.Quit
}
