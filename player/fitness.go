package player

import "quixo/game"

const losingPenalty = 1000

type scored struct {
	action game.Action
	score  int
}

// fitness scores action for the player to move: long lines of own cubes are
// rewarded and recycling an own cube costs a point. With penalizeLoss, results that hand the opponent a full line
// are pushed to the bottom.
func fitness(state *game.State, action game.Action, penalizeLoss bool) (int, error) {
	me := state.Player()
	next, err := game.Apply(state.Board, me, action)
	if err != nil {
		return 0, err
	}

	score := game.LineScore(next, me)
	if state.Board.At(action.Origin) == me {
		score--
	}
	if penalizeLoss && game.CompletesLine(next, me.Opponent()) {
		score -= losingPenalty
	}
	return score, nil
}
