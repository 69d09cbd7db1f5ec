package cmd

import (
	"fmt"

	"quixo/agent"
	"quixo/experiments"
	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"
	"quixo/player"
	"quixo/utils"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Episodes per point of the rolling win rate chart.
const plotWindow = 100

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a learning agent, then evaluate it against an opponent",
	RunE:  runTrain,
}

func init() {
	flags := trainCmd.Flags()
	flags.Int("role", 0, "seat of the agent, 0 moves first")
	flags.Int("episodes", meta.TRAIN_EPISODES, "training games")
	flags.String("explorer", "random", fmt.Sprintf("exploration policy, one of %v", player.Names))
	flags.String("opponent", "random", fmt.Sprintf("training opponent, one of %v", player.Names))
	flags.String("lookahead", "max", "fold over the opponent's replies, max or min")
	flags.Int("rounds", 1000, "evaluation games after training")
	flags.Bool("show", false, "print the board of one evaluation game")
	flags.Bool("plot", true, "render the training chart")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, au, err := setup(cmd)
	if err != nil {
		return err
	}

	rng := utils.NewRand(cfg.Seed)
	role, err := game.ParsePlayer(cfg.Agent.Role)
	if err != nil {
		return err
	}
	explorer, err := player.New(cfg.Agent.Explorer, rng)
	if err != nil {
		return err
	}
	opponent, err := player.New(cfg.Agent.Opponent, rng)
	if err != nil {
		return err
	}
	lookahead, err := agent.ParseLookahead(cfg.Agent.Lookahead)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	bot := agent.New(role,
		agent.WithLearningRate(cfg.Agent.LearningRate),
		agent.WithDiscount(cfg.Agent.Discount),
		agent.WithExploration(cfg.Agent.Exploration),
		agent.WithExplorer(explorer),
		agent.WithOpponent(opponent),
		agent.WithRand(rng),
		agent.WithBoardSize(cfg.BoardSize),
		agent.WithLookahead(lookahead),
		agent.WithMetrics(collector),
	)

	writer, err := metrics.NewWriter(cfg.OutputDir, "train")
	if err != nil {
		return err
	}

	err = bot.Train(cfg.Agent.Episodes)
	if err != nil {
		return err
	}

	episodes := collector.Complete()
	err = writer.WriteEpisodes(episodes)
	if err != nil {
		return fmt.Errorf("failed to write episodes: %w", err)
	}
	if cfg.Match.Plot {
		err = metrics.PlotTraining(writer.Path("training.html"), bot.String(), episodes, plotWindow)
		if err != nil {
			return err
		}
		log.Info().Msgf("stored training chart in %s", writer.Path("training.html"))
	}

	rival, err := player.New(cfg.Match.Opponent, rng)
	if err != nil {
		return err
	}
	var p1, p2 player.Player = bot, rival
	if role == game.Player1 {
		p1, p2 = rival, bot
	}

	summary, err := experiments.RunMatchup("train", p1, p2, cfg.Match.Rounds, cfg.BoardSize, writer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, experiments.Score(summary))
	fmt.Fprintf(out, "Boards never seen in training: %d\n", bot.Unseen())

	if cfg.Match.Show {
		return showGame(out, au, p1, p2, cfg.BoardSize)
	}
	return nil
}
