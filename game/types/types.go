package types

import "fmt"

// Point is a cell on the playing field.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the field.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the field.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction to a movement delta. Y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Scene is the screen the game loop is currently driving.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlay
	SceneScore
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case ScenePlay:
		return "play"
	case SceneScore:
		return "score"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// Key is a logical key the game reacts to. The ui package maps these to
// raylib key codes.
type Key int

const (
	KeySpace Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Keys lists every logical key, in polling order.
var Keys = []Key{KeySpace, KeyUp, KeyDown, KeyLeft, KeyRight}
