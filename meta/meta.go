// meta/meta.go
package meta

// BOARD_SIZE is the side length of the standard board.
const BOARD_SIZE = 5

// MAX_TURNS caps the number of moves in a single game.
const MAX_TURNS = 1000

// Default learning hyperparameters.
const (
	LEARNING_RATE  = 0.9
	DISCOUNT       = 0.9
	EXPLORATION    = 0.1
	TRAIN_EPISODES = 10_000
)

// LOG_EVERY is how many training episodes pass between progress lines.
const LOG_EVERY = 1000
