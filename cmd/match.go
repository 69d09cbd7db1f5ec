package cmd

import (
	"fmt"

	"quixo/experiments"
	"quixo/experiments/metrics"
	"quixo/player"
	"quixo/utils"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Play a series of games between two non-learning players",
	RunE:  runMatch,
}

func init() {
	flags := matchCmd.Flags()
	flags.String("p1", "heuristic", fmt.Sprintf("first player, one of %v", player.Names))
	flags.String("p2", "random", fmt.Sprintf("second player, one of %v", player.Names))
	flags.Int("rounds", 1000, "games to play")
	flags.Bool("show", false, "print the board of one more game")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, au, err := setup(cmd)
	if err != nil {
		return err
	}

	rng := utils.NewRand(cfg.Seed)
	p1, err := player.New(cfg.Match.Player1, rng)
	if err != nil {
		return err
	}
	p2, err := player.New(cfg.Match.Player2, rng)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "match")
	if err != nil {
		return err
	}

	summary, err := experiments.RunMatchup("match", p1, p2, cfg.Match.Rounds, cfg.BoardSize, writer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, experiments.Score(summary))
	fmt.Fprintf(out, "%s win rate %.3f, 95%% interval [%.3f, %.3f]\n", summary.Player1, summary.WinRate, summary.Interval[0], summary.Interval[1])

	if cfg.Match.Show {
		return showGame(out, au, p1, p2, cfg.BoardSize)
	}
	return nil
}
