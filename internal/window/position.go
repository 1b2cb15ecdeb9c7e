package window

import "github.com/etbcor/tomo/internal/state"

// PositionKind says how a window's position cell is owned.
type PositionKind int

const (
	// PositionFixed is a literal copied into a cell private to the window.
	PositionFixed PositionKind = iota
	// PositionShared is a cell owned by the page and possibly other windows.
	PositionShared
	// PositionOffset is a shared cell rendered MetaOffsetRows lower, used by
	// pages nested under a Meta window banner.
	PositionOffset
)

func (k PositionKind) String() string {
	switch k {
	case PositionFixed:
		return "fixed"
	case PositionShared:
		return "shared"
	case PositionOffset:
		return "offset"
	}
	return "unknown"
}

// Position is the position argument of New.
type Position struct {
	kind  PositionKind
	cell  *state.Cell[Pos]
	fixed Pos
}

// At returns a fixed position.
func At(x, y int) Position {
	return Position{kind: PositionFixed, fixed: Pos{x, y}}
}

// Shared returns a position stored in c.
func Shared(c *state.Cell[Pos]) Position {
	return Position{kind: PositionShared, cell: c}
}

// Offset returns a position stored in c and drawn below a nesting banner.
func Offset(c *state.Cell[Pos]) Position {
	return Position{kind: PositionOffset, cell: c}
}

// Kind returns how the position is owned.
func (p Position) Kind() PositionKind { return p.kind }

// Cell returns the underlying cell, or nil for a fixed position.
func (p Position) Cell() *state.Cell[Pos] { return p.cell }

// Rebind turns a shared position into an offset one over the same cell.
// Fixed and offset positions are returned unchanged, so rebinding is stable
// at every nesting level past the first.
func (p Position) Rebind() Position {
	if p.kind == PositionShared {
		return Offset(p.cell)
	}
	return p
}

func (p Position) resolve() (*state.Cell[Pos], bool) {
	switch p.kind {
	case PositionShared:
		return p.cell, false
	case PositionOffset:
		return p.cell, true
	}
	return state.NewCell(p.fixed), false
}
