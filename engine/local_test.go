package engine

import (
	"errors"
	"testing"

	"quixo/game"
	"quixo/player"
	"quixo/utils"

	"github.com/stretchr/testify/require"
)

func TestLocalEngine(t *testing.T) {
	t.Run("needs two players", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([]player.Player{player.NewRandom(utils.NewRand(1))}, 5) })
	})

	t.Run("plays a game to the end", func(t *testing.T) {
		rng := utils.NewRand(11)
		e := LocalEngine([]player.Player{player.NewRandom(rng), player.NewRandom(rng)}, 5)

		winner, gameMetric, moveMetrics, err := e.Run()
		if errors.Is(err, ErrTurnLimit) {
			require.True(t, gameMetric.TurnLimited)
			return
		}
		require.NoError(t, err)
		require.NotEqual(t, game.None, winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, game.Player0, gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.True(t, game.CompletesLine(e.State.Board, winner))

		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			want := game.Player0
			if i%2 == 1 {
				want = game.Player1
			}
			require.Equal(t, want, m.Player)
		}
		require.Equal(t, e.State.Board.Hash(), moveMetrics[len(moveMetrics)-1].BoardHash)
	})

	t.Run("reports the turn limit", func(t *testing.T) {
		rng := utils.NewRand(3)
		e := LocalEngine([]player.Player{player.NewRandom(rng), player.NewRandom(rng)}, 5)
		e.MaxTurns = 2

		winner, gameMetric, moveMetrics, err := e.Run()
		require.ErrorIs(t, err, ErrTurnLimit)
		require.Equal(t, game.None, winner)
		require.True(t, gameMetric.TurnLimited)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("propagates player errors", func(t *testing.T) {
		boom := errors.New("boom")
		failing := player.Func(func(*game.State) (game.Action, error) { return game.Action{}, boom })
		e := LocalEngine([]player.Player{failing, player.NewRandom(utils.NewRand(1))}, 3)

		_, _, _, err := e.Run()
		require.ErrorIs(t, err, boom)
	})

	t.Run("rejects illegal actions", func(t *testing.T) {
		center := player.Func(func(*game.State) (game.Action, error) {
			return game.Action{Origin: game.Position{Row: 1, Col: 1}, Direction: game.Top}, nil
		})
		e := LocalEngine([]player.Player{center, center}, 3)

		_, _, _, err := e.Run()
		require.ErrorIs(t, err, game.ErrIllegalAction)
	})
}
