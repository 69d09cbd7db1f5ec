package metrics

import (
	"time"

	"quixo/game"
)

type MoveMetric struct {
	Step      int
	Player    game.Player
	Action    game.Action
	BoardHash uint64 // hash of the board after the move
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TurnLimited    bool
}

// EpisodeMetric describes one training episode from the learner's side.
type EpisodeMetric struct {
	Episode   int
	Won       bool
	Discarded bool // hit the turn limit, no update applied
	Moves     int
	States    int // distinct states in the value store after the update
	Entries   int
	Duration  time.Duration
}

// Collector gathers training metrics episode by episode.
type Collector interface {
	AddEpisode(metric EpisodeMetric)
	Complete() []EpisodeMetric
}

type collector struct {
	episodes []EpisodeMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddEpisode(metric EpisodeMetric) {
	c.episodes = append(c.episodes, metric)
}

func (c *collector) Complete() []EpisodeMetric {
	out := make([]EpisodeMetric, len(c.episodes))
	copy(out, c.episodes)
	return out
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddEpisode(metric EpisodeMetric) {}
func (c *dummyCollector) Complete() []EpisodeMetric       { return nil }
