// Package input turns key presses and mouse events into desktop actions.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/logging"
)

var logger = logging.For("input")

// HandleInput routes an input message to the keyboard or mouse handlers.
// It is registered with app.SetInputHandler.
func HandleInput(msg tea.Msg, d *app.Desk) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	}
	return d, nil
}

// HandleKeyPress handles a key press. Open overlays take priority over the
// configured bindings.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	key := msg.String()

	// Ctrl+C always quits, whatever the bindings say.
	if key == "ctrl+c" {
		return d, tea.Quit
	}

	if d.Launcher.Open {
		path, chosen, cmd := d.Launcher.Update(msg)
		if chosen {
			d.RequestNavigation(path)
		}
		return d, cmd
	}

	if d.ShowHelp {
		if key == "?" || key == "esc" || key == "q" {
			d.ShowHelp = false
		}
		return d, nil
	}

	if d.Drag.Active() {
		if key == "esc" {
			d.Drag.End()
		}
		return d, nil
	}

	if d.KeybindRegistry != nil {
		if action := d.KeybindRegistry.GetAction(key); action != "" {
			dispatcher := GetDispatcher()
			if dispatcher.HasAction(action) {
				return dispatcher.Dispatch(action, msg, d)
			}
		}
	}

	if key == "esc" && d.Focused != nil {
		d.Focused = nil
	}
	return d, nil
}
