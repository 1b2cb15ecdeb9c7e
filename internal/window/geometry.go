package window

// Pos is a point in terminal cells.
type Pos struct{ X, Y int }

// Add returns p+q.
func (p Pos) Add(q Pos) Pos { return Pos{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Pos) Sub(q Pos) Pos { return Pos{p.X - q.X, p.Y - q.Y} }

// Size is a width and height in terminal cells.
type Size struct{ W, H int }

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct{ X, Y, W, H int }

// Origin returns the top-left corner of r.
func (r Rect) Origin() Pos { return Pos{r.X, r.Y} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Direction is a nudge direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) delta(step int) Pos {
	switch d {
	case Up:
		return Pos{0, -step}
	case Down:
		return Pos{0, step}
	case Left:
		return Pos{-step, 0}
	case Right:
		return Pos{step, 0}
	}
	return Pos{}
}
