package engine

import (
	"errors"

	"quixo/experiments/metrics"
	"quixo/game"
)

// ErrTurnLimit is returned when a game reaches meta.MAX_TURNS without a winner.
var ErrTurnLimit = errors.New("turn limit reached")

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
