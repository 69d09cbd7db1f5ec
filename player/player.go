// Package player defines the decision contract shared by every participant in
// a match, plus the non-learning players used as opponents and as the
// exploration policy of the learning agent.
package player

import (
	"errors"
	"fmt"

	"quixo/game"
	"quixo/utils"
)

var (
	ErrNoLegalActions  = errors.New("no legal actions")
	ErrEmptyPopulation = errors.New("empty population")
	ErrUnknownPlayer   = errors.New("unknown player")
)

// Player picks a legal action for the player to move in state.
type Player interface {
	SelectAction(state *game.State) (game.Action, error)
}

// Func adapts a plain function to the Player interface.
type Func func(state *game.State) (game.Action, error)

func (f Func) SelectAction(state *game.State) (game.Action, error) {
	return f(state)
}

func (f Func) String() string {
	return "Func player"
}

// Names lists the players New can build.
var Names = []string{"random", "heuristic", "genetic"}

// New builds a non-learning player by name.
func New(name string, rng utils.Rand) (Player, error) {
	switch name {
	case "random":
		return NewRandom(rng), nil
	case "heuristic":
		return NewHeuristic(rng), nil
	case "genetic":
		return NewGenetic(rng), nil
	default:
		return nil, fmt.Errorf("%q (want one of %v): %w", name, Names, ErrUnknownPlayer)
	}
}
