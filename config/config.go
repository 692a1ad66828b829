package config

import (
	"errors"
	"fmt"
	"os"
	"queensblood/game"
	"queensblood/searcher"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is read from QB_* environment variables. List values are separated
// by semicolons.
type Config struct {
	Rows     int  `env:"QB_ROWS,default=3"`
	Columns  int  `env:"QB_COLUMNS,default=5"`
	HandSize int  `env:"QB_HAND_SIZE,default=5"`
	Variant  bool `env:"QB_VARIANT,default=false"`

	Games      int      `env:"QB_GAMES,default=10"` // Per match-up
	MaxTurns   int      `env:"QB_MAX_TURNS,default=200"`
	Strategies []string `env:"QB_STRATEGIES,default=fillfirst;rowscore;control;minimax"`
	OutputDir  string   `env:"QB_OUTPUT_DIR,default=experiments/results"`
	Seed       int64    `env:"QB_SEED,default=0"` // 0 picks a seed from the clock

	LogLevel  string `env:"QB_LOG_LEVEL,default=info"`
	LogPretty bool   `env:"QB_LOG_PRETTY,default=true"`
}

// Load decodes the environment and validates the result.
func Load() (Config, error) {
	var c Config
	err := envdecode.Decode(&c)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("cannot decode environment: %w", err)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := game.NewBoard(c.Rows, c.Columns); err != nil {
		return fmt.Errorf("invalid QB_ROWS/QB_COLUMNS: %w", err)
	}
	if limit := len(c.Deck()) / game.HandRatio; c.HandSize < 1 || c.HandSize > limit {
		return fmt.Errorf("invalid QB_HAND_SIZE %d: must be between 1 and %d", c.HandSize, limit)
	}
	if c.Games < 1 {
		return fmt.Errorf("invalid QB_GAMES %d: must be positive", c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("invalid QB_MAX_TURNS %d: must be positive", c.MaxTurns)
	}
	if len(c.Strategies) < 2 {
		return fmt.Errorf("invalid QB_STRATEGIES: need at least two strategies, got %d", len(c.Strategies))
	}
	for _, name := range c.Strategies {
		if _, err := searcher.ByName(name); err != nil {
			return fmt.Errorf("invalid QB_STRATEGIES: %w", err)
		}
	}
	if c.OutputDir == "" {
		return errors.New("invalid QB_OUTPUT_DIR: must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid QB_LOG_LEVEL: %w", err)
	}
	return nil
}

// Rules returns the card rules selected by QB_VARIANT.
func (c Config) Rules() game.Rules {
	if c.Variant {
		rules, err := game.NewVariantRules(game.StandardPatternSize)
		if err != nil {
			panic(err)
		}
		return rules
	}
	return game.NewStandardRules()
}

// Deck returns the built-in deck matching Rules.
func (c Config) Deck() []game.Card {
	if c.Variant {
		return game.VariantDeck()
	}
	return game.StandardDeck()
}

// SetupLogging applies the log level and output format to the global logger.
func (c Config) SetupLogging() {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
