package game

import "fmt"

// Direction names the edge the taken piece is pushed toward.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// Directions lists every direction in enumeration order.
var Directions = [...]Direction{Top, Bottom, Left, Right}

func (d Direction) String() string {
	switch d {
	case Top:
		return "TOP"
	case Bottom:
		return "BOTTOM"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Position is a (row, column) coordinate on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Action takes the piece at Origin, a border cell, and pushes it toward the
// Direction edge.
type Action struct {
	Origin    Position
	Direction Direction
}

func (a Action) String() string {
	return fmt.Sprintf("%v->%v", a.Origin, a.Direction)
}
