package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Key is the canonical representation of a board: every cell in row-major
// order. Two boards with the same content share a key regardless of history.
type Key string

// Board is a fixed-size square grid. Its dimensions never change after
// construction.
type Board struct {
	size  int
	cells []Player // row-major
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	if size < 3 {
		panic(fmt.Sprintf("board size must be at least 3, got %d", size))
	}
	cells := make([]Player, size*size)
	for i := range cells {
		cells[i] = None
	}
	return &Board{size: size, cells: cells}
}

// ParseBoard builds a board from one string per row. Cells are '.' for empty,
// '0'/'X' for Player0 and '1'/'O' for Player1.
func ParseBoard(rows ...string) (*Board, error) {
	size := len(rows)
	if size < 3 {
		return nil, fmt.Errorf("board needs at least 3 rows, got %d", size)
	}
	b := NewBoard(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c := 0; c < size; c++ {
			p, ok := playerFromSymbol(row[c])
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", r, c, row[c])
			}
			b.cells[r*size+c] = p
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

// Copy returns an independent deep copy.
func (b *Board) Copy() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// At returns the owner of the cell at pos.
func (b *Board) At(pos Position) Player {
	return b.cells[pos.Row*b.size+pos.Col]
}

// Set overwrites the cell at pos. Only used to build fixtures; game play goes
// through Apply.
func (b *Board) Set(pos Position, p Player) error {
	if !b.inBounds(pos) {
		return fmt.Errorf("set %v: %w", pos, ErrOutOfBounds)
	}
	b.cells[pos.Row*b.size+pos.Col] = p
	return nil
}

// Count returns how many cells p owns.
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b.cells {
		if c == p {
			n++
		}
	}
	return n
}

// Equal reports structural equality.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

func (b *Board) Key() Key {
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = c.symbol()
	}
	return Key(buf)
}

// Hash is a 64-bit digest of the key, used in move records and logs.
func (b *Board) Hash() uint64 {
	return xxhash.Sum64String(string(b.Key()))
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sb.WriteByte(b.cells[r*b.size+c].symbol())
		}
		if r < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
