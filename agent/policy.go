package agent

import (
	"fmt"

	"quixo/game"
)

// SelectAction picks the agent's move. While training, the explorer is
// consulted with probability ε and on every board the store has not seen;
// otherwise the best stored action is played if its value is positive. Moves
// made while training are appended to the trajectory.
func (a *Agent) SelectAction(state *game.State) (game.Action, error) {
	if state.Player() != a.role {
		return game.Action{}, fmt.Errorf("agent plays %v, %v to move: %w", a.role, state.Player(), ErrNotAgentsTurn)
	}

	action, err := a.choose(state)
	if err != nil {
		return game.Action{}, err
	}

	if a.training {
		a.trajectory = append(a.trajectory, Step{Board: state.Board.Copy(), Action: action})
	}
	return action, nil
}

func (a *Agent) choose(state *game.State) (game.Action, error) {
	key := state.Board.Key()

	if a.training && (a.rng.Float64() <= a.exploration || !a.values.Has(key)) {
		return a.explore(state)
	}

	best, ok := a.values.Best(key)
	if !ok {
		a.unseen++
		return a.explore(state)
	}
	if best.Value > 0 {
		return best.Action, nil
	}
	// Nothing recorded here has led to a win
	return a.explore(state)
}

func (a *Agent) explore(state *game.State) (game.Action, error) {
	action, err := a.explorer.SelectAction(state)
	if err != nil {
		return game.Action{}, fmt.Errorf("explorer %v: %w", a.explorer, err)
	}
	return action, nil
}
