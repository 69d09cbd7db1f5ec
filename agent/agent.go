// Package agent implements a tabular learning player. The agent records the
// boards it moved from during an episode and, once the episode is decided,
// blends the outcome with a one-ply lookahead over the opponent's replies.
package agent

import (
	"errors"
	"fmt"

	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"
	"quixo/player"
	"quixo/store"
	"quixo/utils"
)

var ErrNotAgentsTurn = errors.New("not the agent's turn")

// Lookahead selects how the replies of the opponent are folded into a single
// estimate during the update.
type Lookahead int

const (
	// LookaheadMax takes the best value over all replies.
	LookaheadMax Lookahead = iota
	// LookaheadMin takes the worst value over all replies, treating the
	// opponent as adversarial.
	LookaheadMin
)

func (l Lookahead) String() string {
	switch l {
	case LookaheadMax:
		return "max"
	case LookaheadMin:
		return "min"
	default:
		return fmt.Sprintf("Lookahead(%d)", int(l))
	}
}

// ParseLookahead maps "max" or "min" to a Lookahead.
func ParseLookahead(s string) (Lookahead, error) {
	switch s {
	case "max":
		return LookaheadMax, nil
	case "min":
		return LookaheadMin, nil
	default:
		return 0, fmt.Errorf("unknown lookahead %q", s)
	}
}

// Step is a move the agent made: the board it moved from and the action.
type Step struct {
	Board  *game.Board
	Action game.Action
}

type Option func(a *Agent)

type Agent struct {
	role         game.Player
	learningRate float64
	discount     float64
	exploration  float64
	training     bool

	explorer player.Player
	opponent player.Player
	rng      utils.Rand
	size     int

	values     *store.Store
	lookahead  Lookahead
	metrics    metrics.Collector
	trajectory []Step

	games  int
	unseen int
}

func WithLearningRate(alpha float64) Option {
	return func(a *Agent) {
		if utils.InUnitInterval(alpha) {
			a.learningRate = alpha
		}
	}
}

func WithDiscount(gamma float64) Option {
	return func(a *Agent) {
		if utils.InUnitInterval(gamma) {
			a.discount = gamma
		}
	}
}

func WithExploration(epsilon float64) Option {
	return func(a *Agent) {
		if utils.InUnitInterval(epsilon) {
			a.exploration = epsilon
		}
	}
}

// WithExplorer sets the player consulted whenever the agent explores.
func WithExplorer(explorer player.Player) Option {
	return func(a *Agent) {
		if explorer != nil {
			a.explorer = explorer
		}
	}
}

// WithOpponent sets the player the agent trains against.
func WithOpponent(opponent player.Player) Option {
	return func(a *Agent) {
		if opponent != nil {
			a.opponent = opponent
		}
	}
}

func WithRand(rng utils.Rand) Option {
	return func(a *Agent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

func WithBoardSize(size int) Option {
	return func(a *Agent) {
		if size >= 3 {
			a.size = size
		}
	}
}

// WithStore starts the agent from an existing value store.
func WithStore(values *store.Store) Option {
	return func(a *Agent) {
		if values != nil {
			a.values = values
		}
	}
}

func WithLookahead(lookahead Lookahead) Option {
	return func(a *Agent) {
		if lookahead == LookaheadMax || lookahead == LookaheadMin {
			a.lookahead = lookahead
		}
	}
}

// WithMetrics records one metric per training episode in collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(a *Agent) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// New returns an agent in training mode that plays as role.
func New(role game.Player, options ...Option) *Agent {
	if role != game.Player0 && role != game.Player1 {
		panic(fmt.Sprintf("invalid agent role %v", role))
	}

	a := &Agent{ // Default values
		role:         role,
		learningRate: meta.LEARNING_RATE,
		discount:     meta.DISCOUNT,
		exploration:  meta.EXPLORATION,
		training:     true,
		size:         meta.BOARD_SIZE,
		lookahead:    LookaheadMax,
		metrics:      metrics.NewDummyCollector(),
	}

	for _, option := range options {
		option(a)
	}

	if a.rng == nil {
		a.rng = utils.NewRand(0)
	}
	if a.explorer == nil {
		a.explorer = player.NewRandom(a.rng)
	}
	if a.opponent == nil {
		a.opponent = player.NewRandom(a.rng)
	}
	if a.values == nil {
		a.values = store.New()
	}

	return a
}

func (a *Agent) Role() game.Player {
	return a.role
}

func (a *Agent) Training() bool {
	return a.training
}

func (a *Agent) Exploration() float64 {
	return a.exploration
}

func (a *Agent) Store() *store.Store {
	return a.values
}

// Trajectory returns the moves recorded in the current episode.
func (a *Agent) Trajectory() []Step {
	out := make([]Step, len(a.trajectory))
	copy(out, a.trajectory)
	return out
}

// Unseen counts the decisions taken outside training on a board the store
// has no entry for.
func (a *Agent) Unseen() int {
	return a.unseen
}

func (a *Agent) String() string {
	return fmt.Sprintf("Qbot, trained over %d games with %v logic", a.games, a.explorer)
}
