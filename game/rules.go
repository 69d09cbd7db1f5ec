package game

import "fmt"

// IsBorder reports whether pos lies on the outer ring of the board.
func (b *Board) IsBorder(pos Position) bool {
	if !b.inBounds(pos) {
		return false
	}
	last := b.size - 1
	return pos.Row == 0 || pos.Row == last || pos.Col == 0 || pos.Col == last
}

// excluded reports whether d points off the grid from pos, e.g. LEFT from the
// leftmost column.
func (b *Board) excluded(pos Position, d Direction) bool {
	last := b.size - 1
	switch d {
	case Top:
		return pos.Row == 0
	case Bottom:
		return pos.Row == last
	case Left:
		return pos.Col == 0
	case Right:
		return pos.Col == last
	default:
		return true
	}
}

// Permitted reports whether d can be played from the border cell pos,
// ignoring who owns it.
func (b *Board) Permitted(pos Position, d Direction) bool {
	return b.IsBorder(pos) && !b.excluded(pos, d)
}

// BorderPositions lists the ring cells in row-major order.
func (b *Board) BorderPositions() []Position {
	positions := make([]Position, 0, 4*(b.size-1))
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			pos := Position{Row: r, Col: c}
			if b.IsBorder(pos) {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

// LegalActions returns every action player may take. Origins owned by the
// opponent are skipped. Calling it on a decided board is a caller error.
func LegalActions(b *Board, player Player) []Action {
	opponent := player.Opponent()
	actions := []Action{}
	for _, pos := range b.BorderPositions() {
		if b.At(pos) == opponent {
			continue
		}
		for _, d := range Directions {
			if !b.excluded(pos, d) {
				actions = append(actions, Action{Origin: pos, Direction: d})
			}
		}
	}
	return actions
}

// IsLegal reports whether player may take action on b.
func IsLegal(b *Board, player Player, action Action) bool {
	if player != Player0 && player != Player1 {
		return false
	}
	if !b.Permitted(action.Origin, action.Direction) {
		return false
	}
	return b.At(action.Origin) != player.Opponent()
}

// Apply returns the successor of b after player takes action. The piece at
// the origin is removed, the pieces between the origin and the target edge
// slide one step back to fill the gap, and player's marker lands on the edge
// cell. b itself is never modified.
func Apply(b *Board, player Player, action Action) (*Board, error) {
	if !IsLegal(b, player, action) {
		return nil, fmt.Errorf("%v by %v: %w", action, player, ErrIllegalAction)
	}

	next := b.Copy()
	row, col := action.Origin.Row, action.Origin.Col
	n := next.size
	cells := next.cells

	switch action.Direction {
	case Left:
		for c := col; c > 0; c-- {
			cells[row*n+c] = cells[row*n+c-1]
		}
		cells[row*n] = player
	case Right:
		for c := col; c < n-1; c++ {
			cells[row*n+c] = cells[row*n+c+1]
		}
		cells[row*n+n-1] = player
	case Top:
		for r := row; r > 0; r-- {
			cells[r*n+col] = cells[(r-1)*n+col]
		}
		cells[col] = player
	case Bottom:
		for r := row; r < n-1; r++ {
			cells[r*n+col] = cells[(r+1)*n+col]
		}
		cells[(n-1)*n+col] = player
	}
	return next, nil
}

// Winner returns the player owning a full row, column or diagonal. When the
// last move completed lines for both players, mover wins.
func Winner(b *Board, mover Player) Player {
	zero := CompletesLine(b, Player0)
	one := CompletesLine(b, Player1)
	switch {
	case zero && one:
		return mover
	case zero:
		return Player0
	case one:
		return Player1
	default:
		return None
	}
}
