package agent

import (
	"fmt"

	"quixo/game"
)

// Update folds the outcome of the finished episode into the store and clears
// the trajectory. The reward is +1 if winner is the agent's role, -1
// otherwise. A (board, action) pair seen for the first time is worth
// reward·γ; a known pair moves toward reward + γ·lookahead at rate α.
func (a *Agent) Update(winner game.Player) error {
	defer func() { a.trajectory = nil }()

	reward := -1.0
	if winner == a.role {
		reward = 1.0
	}

	for i, step := range a.trajectory {
		key := step.Board.Key()
		old, seen := a.values.Value(key, step.Action)
		if !seen {
			a.values.Upsert(key, step.Action, reward*a.discount)
			continue
		}

		next, err := a.estimate(step.Board, step.Action)
		if err != nil {
			return fmt.Errorf("update step %d: %w", i, err)
		}
		value := old*(1-a.learningRate) + a.learningRate*(reward+a.discount*next)
		a.values.Upsert(key, step.Action, value)
	}
	return nil
}

// estimate returns the lookahead value of playing action on board: for each
// reply of the opponent, the best value stored for the resulting board (0 if
// none), folded by the agent's Lookahead mode. A move that wins outright
// leaves no replies and is worth 0.
func (a *Agent) estimate(board *game.Board, action game.Action) (float64, error) {
	s1, err := game.Apply(board, a.role, action)
	if err != nil {
		return 0, err
	}
	if game.Winner(s1, a.role) != game.None {
		return 0, nil
	}

	opponent := a.role.Opponent()
	replies := game.LegalActions(s1, opponent)
	if len(replies) == 0 {
		return 0, nil
	}

	var folded float64
	for i, reply := range replies {
		s2, err := game.Apply(s1, opponent, reply)
		if err != nil {
			return 0, err
		}
		value := 0.0
		if best, ok := a.values.Best(s2.Key()); ok {
			value = best.Value
		}

		switch {
		case i == 0:
			folded = value
		case a.lookahead == LookaheadMin && value < folded:
			folded = value
		case a.lookahead == LookaheadMax && value > folded:
			folded = value
		}
	}
	return folded, nil
}
