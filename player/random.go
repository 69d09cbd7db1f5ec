package player

import (
	"quixo/game"
	"quixo/utils"
)

// Random plays a uniformly random legal action.
type Random struct {
	rng utils.Rand
}

func NewRandom(rng utils.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) SelectAction(state *game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoLegalActions
	}
	return actions[r.rng.Intn(len(actions))], nil
}

func (r *Random) String() string {
	return "Random player"
}
