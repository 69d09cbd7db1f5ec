package player

import (
	"quixo/game"
	"quixo/utils"

	"github.com/samber/lo"
)

// Heuristic plays the legal action with the best one-ply fitness, breaking
// ties at random.
type Heuristic struct {
	rng utils.Rand
}

func NewHeuristic(rng utils.Rand) *Heuristic {
	return &Heuristic{rng: rng}
}

func (h *Heuristic) SelectAction(state *game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	candidates := make([]scored, 0, len(actions))
	for _, a := range actions {
		score, err := fitness(state, a, true)
		if err != nil {
			return game.Action{}, err
		}
		candidates = append(candidates, scored{action: a, score: score})
	}

	top := lo.MaxBy(candidates, func(a, b scored) bool { return a.score > b.score }).score
	best := lo.Filter(candidates, func(c scored, _ int) bool { return c.score == top })
	return best[h.rng.Intn(len(best))].action, nil
}

func (h *Heuristic) String() string {
	return "Heuristic player"
}
