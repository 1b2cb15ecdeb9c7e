package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/window"
)

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	mouse := msg.Mouse()

	// A click anywhere dismisses an open overlay.
	if d.Launcher.Open {
		d.Launcher.Hide()
		return d, nil
	}
	if d.ShowHelp {
		d.ShowHelp = false
		return d, nil
	}
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	pt := window.Pos{X: mouse.X, Y: mouse.Y}
	target, ok := d.Page.HitTest(pt, d.Width, d.Height)
	if !ok {
		return d, nil
	}
	if target.Footer {
		return handleFooterClick(target.Segment, d)
	}
	if target.Chat {
		target.Page.Chat.Next()
		return d, nil
	}

	// Keys follow the clicked window. Only presses on the title bar, buttons
	// included, raise it, and each press raises it once.
	w := target.Window
	d.Focused = w

	switch target.Hit.Kind {
	case window.HitControl:
		w.Focus()
		w.Press(target.Hit.Control)
	case window.HitTab:
		w.SelectTab(target.Hit.Tab)
	case window.HitTitleBar:
		d.Drag.Begin(w, target.Origin, pt)
	case window.HitContent:
		w.Click(target.Hit.Local)
	}
	return d, nil
}

func handleFooterClick(seg footer.Segment, d *app.Desk) (*app.Desk, tea.Cmd) {
	switch seg.Kind {
	case footer.SegmentItem:
		d.Page.Footer.Activate(seg.Label)
	case footer.SegmentHome:
		d.RequestNavigation("/")
	}
	return d, nil
}

// handleMouseMotion moves the dragged window, if any.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	if !d.Drag.Active() {
		return d, nil
	}
	mouse := msg.Mouse()
	d.Drag.Move(window.Pos{X: mouse.X, Y: mouse.Y})
	return d, nil
}

// handleMouseRelease ends a drag.
func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	if d.Drag.Active() {
		mouse := msg.Mouse()
		d.Drag.Move(window.Pos{X: mouse.X, Y: mouse.Y})
		d.Drag.End()
	}
	return d, nil
}

// handleMouseWheel scrolls the window under the pointer.
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desk) (*app.Desk, tea.Cmd) {
	mouse := msg.Mouse()
	var delta int
	switch mouse.Button {
	case tea.MouseWheelUp:
		delta = -ScrollStep
	case tea.MouseWheelDown:
		delta = ScrollStep
	default:
		return d, nil
	}
	target, ok := d.Page.HitTest(window.Pos{X: mouse.X, Y: mouse.Y}, d.Width, d.Height)
	if ok && target.Window != nil {
		target.Window.ScrollBy(delta)
	}
	return d, nil
}
