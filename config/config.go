// Package config loads run settings from defaults, an optional YAML file,
// QUIXO_* environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"quixo/agent"
	"quixo/meta"
	"quixo/player"
	"quixo/utils"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid config")

type Agent struct {
	Role         int     `mapstructure:"role"`
	LearningRate float64 `mapstructure:"learning_rate"`
	Discount     float64 `mapstructure:"discount"`
	Exploration  float64 `mapstructure:"exploration"`
	Episodes     int     `mapstructure:"episodes"`
	Explorer     string  `mapstructure:"explorer"`
	Opponent     string  `mapstructure:"opponent"`
	Lookahead    string  `mapstructure:"lookahead"`
}

type Match struct {
	Rounds   int    `mapstructure:"rounds"`
	Opponent string `mapstructure:"opponent"` // faced by the trained agent
	Player1  string `mapstructure:"p1"`
	Player2  string `mapstructure:"p2"`
	Show     bool   `mapstructure:"show"`
	Plot     bool   `mapstructure:"plot"`
}

type Config struct {
	BoardSize int    `mapstructure:"board_size"`
	Seed      uint64 `mapstructure:"seed"` // 0 draws a fresh seed
	LogLevel  string `mapstructure:"log_level"`
	OutputDir string `mapstructure:"output_dir"`
	Agent     Agent  `mapstructure:"agent"`
	Match     Match  `mapstructure:"match"`
}

var defaults = map[string]any{
	"board_size":          meta.BOARD_SIZE,
	"seed":                0,
	"log_level":           "info",
	"output_dir":          "experiments",
	"agent.role":          0,
	"agent.learning_rate": meta.LEARNING_RATE,
	"agent.discount":      meta.DISCOUNT,
	"agent.exploration":   meta.EXPLORATION,
	"agent.episodes":      meta.TRAIN_EPISODES,
	"agent.explorer":      "random",
	"agent.opponent":      "random",
	"agent.lookahead":     "max",
	"match.rounds":        1000,
	"match.opponent":      "random",
	"match.p1":            "heuristic",
	"match.p2":            "random",
	"match.show":          false,
	"match.plot":          true,
}

// Flags maps command line flag names to config keys.
var Flags = map[string]string{
	"board-size": "board_size",
	"seed":       "seed",
	"log-level":  "log_level",
	"output-dir": "output_dir",
	"role":       "agent.role",
	"episodes":   "agent.episodes",
	"explorer":   "agent.explorer",
	"opponent":   "agent.opponent",
	"lookahead":  "agent.lookahead",
	"rounds":     "match.rounds",
	"p1":         "match.p1",
	"p2":         "match.p2",
	"show":       "match.show",
	"plot":       "match.plot",
}

// Load reads the config. path may be empty, flags may be nil; only flags set
// on the command line override the other sources.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("QUIXO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.BoardSize < 3 {
		invalid("board_size %d is below 3", c.BoardSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		invalid("log_level %q", c.LogLevel)
	}
	if c.Agent.Role != 0 && c.Agent.Role != 1 {
		invalid("agent.role %d is neither 0 nor 1", c.Agent.Role)
	}
	for name, value := range map[string]float64{
		"agent.learning_rate": c.Agent.LearningRate,
		"agent.discount":      c.Agent.Discount,
		"agent.exploration":   c.Agent.Exploration,
	} {
		if !utils.InUnitInterval(value) {
			invalid("%s %v is outside [0, 1]", name, value)
		}
	}
	if c.Agent.Episodes < 0 {
		invalid("agent.episodes %d is negative", c.Agent.Episodes)
	}
	if _, err := agent.ParseLookahead(c.Agent.Lookahead); err != nil {
		invalid("agent.lookahead %q", c.Agent.Lookahead)
	}
	if c.Match.Rounds < 0 {
		invalid("match.rounds %d is negative", c.Match.Rounds)
	}
	for name, value := range map[string]string{
		"agent.explorer": c.Agent.Explorer,
		"agent.opponent": c.Agent.Opponent,
		"match.opponent": c.Match.Opponent,
		"match.p1":       c.Match.Player1,
		"match.p2":       c.Match.Player2,
	} {
		if !lo.Contains(player.Names, value) {
			invalid("%s %q is not one of %v", name, value, player.Names)
		}
	}

	return errors.Join(errs...)
}
