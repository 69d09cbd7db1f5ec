package game

import (
	"errors"
	"fmt"
)

// Player identifies a side of the game. A cell holding None is empty.
type Player int8

const (
	None    Player = -1
	Player0 Player = 0
	Player1 Player = 1
)

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrOutOfBounds   = errors.New("position out of bounds")
)

// Opponent returns the other side. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player0:
		return Player1
	case Player1:
		return Player0
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Player0:
		return "Player0"
	case Player1:
		return "Player1"
	default:
		return "None"
	}
}

// ParsePlayer maps a role index (0 or 1) to a Player.
func ParsePlayer(role int) (Player, error) {
	switch role {
	case 0:
		return Player0, nil
	case 1:
		return Player1, nil
	default:
		return None, fmt.Errorf("unknown player role %d", role)
	}
}

// symbol is the byte stored for a cell in a board key.
func (p Player) symbol() byte {
	switch p {
	case Player0:
		return '0'
	case Player1:
		return '1'
	default:
		return '.'
	}
}

func playerFromSymbol(c byte) (Player, bool) {
	switch c {
	case '0', 'X', 'x':
		return Player0, true
	case '1', 'O', 'o':
		return Player1, true
	case '.', '-', ' ':
		return None, true
	default:
		return None, false
	}
}
