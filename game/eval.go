package game

// lines returns, for every row, column and both diagonals, the cells on it.
func (b *Board) lines() [][]Player {
	n := b.size
	lines := make([][]Player, 0, 2*n+2)
	for r := 0; r < n; r++ {
		lines = append(lines, b.cells[r*n:(r+1)*n])
	}
	for c := 0; c < n; c++ {
		col := make([]Player, n)
		for r := 0; r < n; r++ {
			col[r] = b.cells[r*n+c]
		}
		lines = append(lines, col)
	}
	main := make([]Player, n)
	anti := make([]Player, n)
	for i := 0; i < n; i++ {
		main[i] = b.cells[i*n+i]
		anti[i] = b.cells[i*n+(n-1-i)]
	}
	return append(lines, main, anti)
}

func count(line []Player, p Player) int {
	n := 0
	for _, c := range line {
		if c == p {
			n++
		}
	}
	return n
}

// CompletesLine reports whether p owns a full row, column or diagonal.
func CompletesLine(b *Board, p Player) bool {
	for _, line := range b.lines() {
		if count(line, p) == len(line) {
			return true
		}
	}
	return false
}

// LineScore sums the squared number of p's cells over every line, favouring
// long (not necessarily contiguous) sequences.
func LineScore(b *Board, p Player) int {
	score := 0
	for _, line := range b.lines() {
		k := count(line, p)
		score += k * k
	}
	return score
}
