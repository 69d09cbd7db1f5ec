package player

import (
	"fmt"
	"slices"

	"quixo/game"
	"quixo/utils"

	"github.com/samber/lo"
)

// Genetic evolves a population of candidate actions for a few generations and
// plays the fittest one. Offspring take the origin of one survivor and the
// direction of another.
type Genetic struct {
	Generations    int
	PopulationSize int
	Survivors      int
	rng            utils.Rand
}

func NewGenetic(rng utils.Rand) *Genetic {
	return &Genetic{
		Generations:    10,
		PopulationSize: 20,
		Survivors:      4, // 20% of the population
		rng:            rng,
	}
}

func (g *Genetic) SelectAction(state *game.State) (game.Action, error) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	population := make([]game.Action, g.PopulationSize)
	for i := range population {
		population[i] = legal[g.rng.Intn(len(legal))]
	}

	var pool, top []scored
	var seen []game.Action
	for gen := 0; gen < g.Generations; gen++ {
		for _, a := range population {
			// Each individual enters the pool once
			if utils.FindIndex(seen, a) >= 0 {
				continue
			}
			seen = append(seen, a)

			score, err := fitness(state, a, false)
			if err != nil {
				return game.Action{}, fmt.Errorf("generation %d: %w", gen, err)
			}
			pool = append(pool, scored{action: a, score: score})
		}

		slices.SortStableFunc(pool, func(a, b scored) int { return b.score - a.score })
		top = pool[:min(g.Survivors, len(pool))]

		// The last generation does not reproduce
		if gen+1 < g.Generations {
			population = g.reproduce(state.Board, top)
		}
	}

	if len(top) == 0 {
		return game.Action{}, ErrEmptyPopulation
	}
	return top[0].action, nil
}

func (g *Genetic) reproduce(board *game.Board, survivors []scored) []game.Action {
	if len(survivors) == 0 {
		return nil
	}
	offspring := make([]game.Action, 0, g.PopulationSize)
	for i := len(survivors); i < g.PopulationSize; i++ {
		p1 := g.rng.Intn(len(survivors))
		p2 := p1
		if len(survivors) > 1 {
			for p2 == p1 {
				p2 = g.rng.Intn(len(survivors))
			}
		}
		offspring = append(offspring, game.Action{
			Origin:    survivors[p1].action.Origin,
			Direction: survivors[p2].action.Direction,
		})
	}
	return lo.Filter(offspring, func(a game.Action, _ int) bool {
		return board.Permitted(a.Origin, a.Direction)
	})
}

func (g *Genetic) String() string {
	return "Genetic player"
}
