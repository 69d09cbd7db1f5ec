package game

import (
	"testing"

	"quixo/utils"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func owners(b *Board) map[Player]int {
	return map[Player]int{
		None:    b.Count(None),
		Player0: b.Count(Player0),
		Player1: b.Count(Player1),
	}
}

// randomBoard fills a board cell by cell and rerolls until nobody has a line.
func randomBoard(r utils.Rand, size int) *Board {
	for {
		b := NewBoard(size)
		for i := range b.cells {
			b.cells[i] = Player(r.Intn(3) - 1)
		}
		if Winner(b, Player0) == None {
			return b
		}
	}
}

func TestLegalActions(t *testing.T) {
	t.Run("empty 5x5 board", func(t *testing.T) {
		b := NewBoard(5)
		actions := LegalActions(b, Player0)

		// 4 corners x 2 directions + 12 edge cells x 3 directions
		require.Len(t, actions, 4*2+12*3, "Every border cell should be playable")
		for _, a := range actions {
			require.True(t, b.IsBorder(a.Origin), "Origins should lie on the border")
		}
	})

	t.Run("corner excludes the two outward directions", func(t *testing.T) {
		b := NewBoard(5)
		var dirs []Direction
		for _, a := range LegalActions(b, Player0) {
			if a.Origin == (Position{Row: 0, Col: 0}) {
				dirs = append(dirs, a.Direction)
			}
		}
		require.ElementsMatch(t, []Direction{Bottom, Right}, dirs)
	})

	t.Run("edge excludes only the outward direction", func(t *testing.T) {
		b := NewBoard(5)
		var dirs []Direction
		for _, a := range LegalActions(b, Player1) {
			if a.Origin == (Position{Row: 2, Col: 4}) {
				dirs = append(dirs, a.Direction)
			}
		}
		require.ElementsMatch(t, []Direction{Top, Bottom, Left}, dirs)
	})

	t.Run("skips opponent origins but keeps own", func(t *testing.T) {
		b := mustParse(t,
			"1...0",
			".....",
			".....",
			".....",
			".....",
		)
		for _, a := range LegalActions(b, Player0) {
			require.NotEqual(t, Position{Row: 0, Col: 0}, a.Origin, "Opponent cell is not a legal origin")
		}
		found := false
		for _, a := range LegalActions(b, Player0) {
			if a.Origin == (Position{Row: 0, Col: 4}) {
				found = true
			}
		}
		require.True(t, found, "Own cell is a legal origin")
	})

	t.Run("order is deterministic", func(t *testing.T) {
		b := NewBoard(4)
		require.Equal(t, LegalActions(b, Player0), LegalActions(b, Player0))
	})

	t.Run("closure on random undecided boards", func(t *testing.T) {
		r := utils.NewRand(11)
		for i := 0; i < 300; i++ {
			b := randomBoard(r, 3+i%3)
			for _, p := range []Player{Player0, Player1} {
				actions := LegalActions(b, p)
				require.NotEmpty(t, actions, "Undecided board should admit a move:\n%s", b)
				for _, a := range actions {
					next, err := Apply(b, p, a)
					require.NoError(t, err)
					if b.At(a.Origin) != p {
						require.False(t, next.Equal(b), "Taking a non-own cube should change the board")
					}
				}
			}
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("push left shifts the row right", func(t *testing.T) {
		b := mustParse(t,
			"01.10",
			".....",
			".....",
			".....",
			".....",
		)
		next, err := Apply(b, Player1, Action{Origin: Position{Row: 0, Col: 2}, Direction: Left})
		require.NoError(t, err)
		require.Equal(t, mustParse(t,
			"10110",
			".....",
			".....",
			".....",
			".....",
		).Key(), next.Key())
	})

	t.Run("push right shifts the row left", func(t *testing.T) {
		b := mustParse(t,
			".....",
			".....",
			"0.1.1",
			".....",
			".....",
		)
		next, err := Apply(b, Player0, Action{Origin: Position{Row: 2, Col: 0}, Direction: Right})
		require.NoError(t, err)
		require.Equal(t, mustParse(t,
			".....",
			".....",
			".1.10",
			".....",
			".....",
		).Key(), next.Key())
	})

	t.Run("push top shifts the column down", func(t *testing.T) {
		b := mustParse(t,
			"...",
			"..1",
			"..0",
		)
		next, err := Apply(b, Player0, Action{Origin: Position{Row: 2, Col: 2}, Direction: Top})
		require.NoError(t, err)
		require.Equal(t, mustParse(t,
			"..0",
			"...",
			"..1",
		).Key(), next.Key())
	})

	t.Run("push bottom shifts the column up", func(t *testing.T) {
		b := mustParse(t,
			"1..",
			"0..",
			"1..",
		)
		next, err := Apply(b, Player1, Action{Origin: Position{Row: 0, Col: 0}, Direction: Bottom})
		require.NoError(t, err)
		require.Equal(t, mustParse(t,
			"0..",
			"1..",
			"1..",
		).Key(), next.Key())
	})

	t.Run("rejects opponent origin", func(t *testing.T) {
		b := mustParse(t,
			"1..",
			"...",
			"...",
		)
		_, err := Apply(b, Player0, Action{Origin: Position{Row: 0, Col: 0}, Direction: Right})
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("rejects excluded direction and interior origin", func(t *testing.T) {
		b := NewBoard(5)
		_, err := Apply(b, Player0, Action{Origin: Position{Row: 0, Col: 2}, Direction: Top})
		require.ErrorIs(t, err, ErrIllegalAction)
		_, err = Apply(b, Player0, Action{Origin: Position{Row: 2, Col: 2}, Direction: Top})
		require.ErrorIs(t, err, ErrIllegalAction)
		_, err = Apply(b, Player0, Action{Origin: Position{Row: 9, Col: 0}, Direction: Top})
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("is pure and returns independent copies", func(t *testing.T) {
		b := mustParse(t,
			"0.1..",
			".....",
			"1...0",
			".....",
			"..0.1",
		)
		before := b.Key()
		a := Action{Origin: Position{Row: 2, Col: 4}, Direction: Left}
		first, err := Apply(b, Player0, a)
		require.NoError(t, err)
		second, err := Apply(b, Player0, a)
		require.NoError(t, err)

		require.Equal(t, before, b.Key(), "Input board should not change")
		require.True(t, first.Equal(second), "Same inputs should give same output")
		require.NotSame(t, first, second)
		require.NoError(t, first.Set(Position{Row: 1, Col: 1}, Player1))
		require.False(t, first.Equal(second), "Outputs should not share cells")
	})

	t.Run("conserves pieces except the taken cube", func(t *testing.T) {
		r := utils.NewRand(5)
		for i := 0; i < 200; i++ {
			b := randomBoard(r, 5)
			p := Player(r.Intn(2))
			actions := LegalActions(b, p)
			a := actions[r.Intn(len(actions))]

			next, err := Apply(b, p, a)
			require.NoError(t, err)

			want := owners(b)
			want[b.At(a.Origin)]--
			want[p]++
			require.Equal(t, want, owners(next), "Only the origin cube should change owner")
			require.LessOrEqual(t, next.Count(p)-b.Count(p), 1)
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("no line", func(t *testing.T) {
		require.Equal(t, None, Winner(NewBoard(5), Player0))
	})

	t.Run("row column and diagonals", func(t *testing.T) {
		row := mustParse(t, "...", "111", "0.0")
		col := mustParse(t, "0.1", "0..", "0.1")
		diag := mustParse(t, "1..", ".1.", "0.1")
		anti := mustParse(t, "..0", ".0.", "0.1")
		require.Equal(t, Player1, Winner(row, Player0))
		require.Equal(t, Player0, Winner(col, Player1))
		require.Equal(t, Player1, Winner(diag, Player0))
		require.Equal(t, Player0, Winner(anti, Player1))
	})

	t.Run("both lines favour the mover", func(t *testing.T) {
		b := mustParse(t, "000", "...", "111")
		require.Equal(t, Player0, Winner(b, Player0))
		require.Equal(t, Player1, Winner(b, Player1))
	})
}

func TestRandomGamesTerminate(t *testing.T) {
	r := utils.NewRand(3)
	for _, size := range []int{3, 5} {
		for i := 0; i < 100; i++ {
			state := NewState(size)
			for !state.IsTerminal() {
				actions := state.LegalActions()
				require.NotEmpty(t, actions)
				next, err := state.Play(actions[r.Intn(len(actions))])
				require.NoError(t, err)
				state = next
				require.Less(t, state.Turns, 100_000, "Game should reach a winner")
			}
			require.NotEqual(t, None, state.Winner())
		}
	}
}
