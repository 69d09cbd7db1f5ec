package game

import "fmt"

// State is a position in a game: the board, the player to move and, once the
// game is decided, the winner.
type State struct {
	Board   *Board
	Current Player
	Won     Player
	Turns   int
}

// NewState returns the opening position on an empty size x size board with
// Player0 to move.
func NewState(size int) *State {
	return &State{
		Board:   NewBoard(size),
		Current: Player0,
		Won:     None,
	}
}

// Player returns the player to move.
func (s *State) Player() Player {
	return s.Current
}

func (s *State) Winner() Player {
	return s.Won
}

func (s *State) IsTerminal() bool {
	return s.Won != None
}

// LegalActions returns the actions available to the player to move, or none
// once the game is decided.
func (s *State) LegalActions() []Action {
	if s.IsTerminal() {
		return nil
	}
	return LegalActions(s.Board, s.Current)
}

// Play returns the state after the player to move takes action. The receiver
// is left untouched.
func (s *State) Play(action Action) (*State, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("play %v: game already won by %v: %w", action, s.Won, ErrIllegalAction)
	}
	board, err := Apply(s.Board, s.Current, action)
	if err != nil {
		return nil, err
	}
	return &State{
		Board:   board,
		Current: s.Current.Opponent(),
		Won:     Winner(board, s.Current),
		Turns:   s.Turns + 1,
	}, nil
}
