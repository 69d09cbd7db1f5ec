// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"quixo/config"
	"quixo/engine"
	"quixo/game"
	"quixo/meta"
	"quixo/player"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:          "quixo",
		Short:        "Train and pit Quixo players against each other",
		SilenceUsage: true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.Int("board-size", meta.BOARD_SIZE, "side length of the board")
	flags.Uint64("seed", 0, "random seed, 0 for a fresh one")
	flags.String("log-level", "info", "zerolog level")
	flags.String("output-dir", "experiments", "directory for game records, summaries and charts")

	rootCmd.AddCommand(trainCmd, matchCmd)
}

// setup loads the config and configures logging. The returned Aurora colors
// boards only when the terminal supports it.
func setup(cmd *cobra.Command) (config.Config, aurora.Aurora, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}

	colors := termenv.EnvColorProfile() != termenv.Ascii
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: !colors}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Debug().Msgf("loaded config: %+v", cfg)

	return cfg, aurora.NewAurora(colors), nil
}

// showGame plays one more game between p1 and p2 and prints the final board.
func showGame(out io.Writer, au aurora.Aurora, p1, p2 player.Player, size int) error {
	e := engine.LocalEngine([]player.Player{p1, p2}, size)
	winner, gameMetric, _, err := e.Run()
	if err != nil && gameMetric.TurnLimited {
		fmt.Fprintf(out, "No winner after %d moves\n", gameMetric.TotalMoves)
	} else if err != nil {
		return err
	}

	fmt.Fprintln(out, e.State.Board.Render(au))
	if winner != game.None {
		fmt.Fprintf(out, "Winner: %v after %d moves\n", winner, gameMetric.TotalMoves)
	}
	return nil
}
