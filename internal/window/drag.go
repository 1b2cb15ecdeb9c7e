package window

// Drag is an active drag session of one window.
type Drag struct {
	w    *Window
	grab Pos
}

// BeginDrag focuses w and starts a drag at pointer, given relative to the
// window's container. The grab offset keeps position = pointer + grab for
// the whole session.
func (w *Window) BeginDrag(pointer Pos) *Drag {
	w.Focus()
	return &Drag{w: w, grab: w.pos.Get().Sub(pointer)}
}

// Window returns the dragged window.
func (d *Drag) Window() *Window { return d.w }

// Move repositions the window under pointer. Moves while expanded are
// ignored.
func (d *Drag) Move(pointer Pos) bool {
	if d.w.expanded {
		return false
	}
	next := pointer.Add(d.grab)
	if next == d.w.pos.Get() {
		return false
	}
	d.w.pos.Set(next)
	return true
}

// Tracker owns the single drag session of a desktop. Pointers passed to it
// are absolute; origin translates them into the dragged window's container.
type Tracker struct {
	drag   *Drag
	origin Pos
}

// Begin starts dragging w, ending any session still in progress.
func (t *Tracker) Begin(w *Window, origin, pointer Pos) {
	t.origin = origin
	t.drag = w.BeginDrag(pointer.Sub(origin))
}

// Move forwards pointer to the active session.
func (t *Tracker) Move(pointer Pos) bool {
	if t.drag == nil {
		return false
	}
	return t.drag.Move(pointer.Sub(t.origin))
}

// End finishes the session. It returns false when there was none.
func (t *Tracker) End() bool {
	if t.drag == nil {
		return false
	}
	t.drag = nil
	return true
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.drag != nil }

// Window returns the dragged window, or nil.
func (t *Tracker) Window() *Window {
	if t.drag == nil {
		return nil
	}
	return t.drag.w
}
