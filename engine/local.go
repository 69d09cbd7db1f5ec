package engine

import (
	"fmt"
	"time"

	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"
	"quixo/player"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    *game.State
	Players  []player.Player // indexed by game.Player
	MaxTurns int
}

// LocalEngine seats players[0] as Player0 and players[1] as Player1 on an
// empty size x size board.
func LocalEngine(players []player.Player, size int) *Local {
	if len(players) != 2 {
		panic("need exactly two players")
	}

	return &Local{
		State:    game.NewState(size),
		Players:  players,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until a winner is found. The engine can
// be run again; every run starts from an empty board.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.State = game.NewState(e.State.Board.Size())
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		Winner:         game.None,
		StartTime:      time.Now(),
	}

	log.Debug().Msgf("player %v is starting", e.State.Player())

	var moveMetrics []metrics.MoveMetric
	for !e.State.IsTerminal() && e.State.Turns < e.MaxTurns {
		current := e.State.Player()

		action, err := e.Players[current].SelectAction(e.State)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %v failed to select an action: %w", current, err)
		}

		next, err := e.State.Play(action)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %v played %v: %w", current, action, err)
		}
		e.State = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:      e.State.Turns,
			Player:    current,
			Action:    action,
			BoardHash: e.State.Board.Hash(),
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Turns

	if !e.State.IsTerminal() {
		gameMetric.TurnLimited = true
		log.Debug().Msgf("stopped after %d turns with no winner", e.State.Turns)
		return game.None, gameMetric, moveMetrics, ErrTurnLimit
	}

	gameMetric.Winner = e.State.Winner()
	log.Debug().Msgf("game won by player %v after %d turns", gameMetric.Winner, e.State.Turns)
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
