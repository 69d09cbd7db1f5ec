package agent

import (
	"errors"
	"fmt"
	"time"

	"quixo/engine"
	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"
	"quixo/player"

	"github.com/rs/zerolog/log"
)

// Train plays episodes games against the opponent, the agent in its role's
// seat, updating the store after each decided game. Games cut off by the turn
// limit are dropped without an update. Afterwards the agent leaves training
// mode and stops exploring.
func (a *Agent) Train(episodes int) error {
	a.training = true
	log.Info().Msgf("training %v over %d episodes against %v", a.role, episodes, a.opponent)

	seats := []player.Player{a, a.opponent}
	if a.role == game.Player1 {
		seats = []player.Player{a.opponent, a}
	}
	e := engine.LocalEngine(seats, a.size)

	wins, discarded := 0, 0
	for i := 1; i <= episodes; i++ {
		start := time.Now()
		a.trajectory = nil

		winner, gameMetric, _, err := e.Run()
		episode := metrics.EpisodeMetric{
			Episode: i,
			Moves:   gameMetric.TotalMoves,
		}
		switch {
		case errors.Is(err, engine.ErrTurnLimit):
			log.Warn().Msgf("episode %d hit the turn limit after %d moves, discarding it", i, gameMetric.TotalMoves)
			a.trajectory = nil
			episode.Discarded = true
			discarded++
		case err != nil:
			return fmt.Errorf("episode %d: %w", i, err)
		default:
			err = a.Update(winner)
			if err != nil {
				return fmt.Errorf("episode %d: %w", i, err)
			}
			episode.Won = winner == a.role
			if episode.Won {
				wins++
			}
		}

		episode.States = a.values.Len()
		episode.Entries = a.values.Entries()
		episode.Duration = time.Since(start)
		a.metrics.AddEpisode(episode)

		if i%meta.LOG_EVERY == 0 {
			log.Info().Msgf("episode %d of %d: %d wins, %d discarded, %d states stored", i, episodes, wins, discarded, a.values.Len())
		}
	}

	a.games += episodes
	a.training = false
	a.exploration = 0
	log.Info().Msgf("completed training: %d wins over %d episodes", wins, episodes)
	return nil
}
