package experiments

import (
	"errors"
	"fmt"

	"quixo/engine"
	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/player"

	"github.com/rs/zerolog/log"
)

// Confidence of the interval reported for win rates, in percent.
const Confidence = 95

// RunMatchup plays rounds games between p1, seated as Player0, and p2. Games
// cut off by the turn limit count for neither side. When writer is not nil the
// game records, move records and summary are stored with it.
func RunMatchup(name string, p1, p2 player.Player, rounds, size int, writer *metrics.Writer) (metrics.Summary, error) {
	summary := metrics.Summary{
		Name:    name,
		Player1: fmt.Sprint(p1),
		Player2: fmt.Sprint(p2),
		Rounds:  rounds,
	}

	log.Info().Msgf("starting %s matchup between %s and %s over %d games...", name, summary.Player1, summary.Player2, rounds)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	e := engine.LocalEngine([]player.Player{p1, p2}, size)
	for i := 1; i <= rounds; i++ {
		winner, gameMetric, moveMetrics, err := e.Run()
		switch {
		case errors.Is(err, engine.ErrTurnLimit):
			summary.TurnLimited++
			log.Warn().Msgf("game %d of %d hit the turn limit", i, rounds)
		case err != nil:
			return summary, fmt.Errorf("game %d of %d: %w", i, rounds, err)
		case winner == game.Player0:
			summary.P1Wins++
		default:
			summary.P2Wins++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i,
				MoveMetric: mm,
			})
		}

		log.Debug().Msgf("completed game %d of %d with winner: %v", i, rounds, winner)
	}

	decided := summary.P1Wins + summary.P2Wins
	if decided > 0 {
		summary.WinRate = float64(summary.P1Wins) / float64(decided)
	}
	lo, hi := metrics.WilsonInterval(summary.P1Wins, decided, Confidence)
	summary.Interval = []float64{lo, hi}

	log.Info().Msgf("completed %s matchup: %s", name, Score(summary))

	if writer == nil {
		return summary, nil
	}

	err := writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msg("stored summary")

	return summary, nil
}

// Score formats the outcome of a matchup.
func Score(s metrics.Summary) string {
	return fmt.Sprintf("After %d games: [%s] won %d, [%s] won %d", s.Rounds, s.Player1, s.P1Wins, s.Player2, s.P2Wins)
}
