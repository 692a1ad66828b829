package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("falling back to defaults", func(t *testing.T) {
		c, err := Load()

		require.NoError(t, err)
		require.Equal(t, 3, c.Rows)
		require.Equal(t, 5, c.Columns)
		require.Equal(t, 5, c.HandSize)
		require.False(t, c.Variant)
		require.Equal(t, 10, c.Games)
		require.Equal(t, 200, c.MaxTurns)
		require.Equal(t, []string{"fillfirst", "rowscore", "control", "minimax"}, c.Strategies)
		require.Equal(t, "experiments/results", c.OutputDir)
		require.NotZero(t, c.Seed, "A zero seed should be replaced")
		require.Equal(t, "info", c.LogLevel)
		require.True(t, c.LogPretty)
	})

	t.Run("reading the environment", func(t *testing.T) {
		t.Setenv("QB_ROWS", "4")
		t.Setenv("QB_COLUMNS", "7")
		t.Setenv("QB_HAND_SIZE", "3")
		t.Setenv("QB_VARIANT", "true")
		t.Setenv("QB_STRATEGIES", "random;rowscore>fillfirst")
		t.Setenv("QB_SEED", "99")
		t.Setenv("QB_LOG_LEVEL", "debug")

		c, err := Load()

		require.NoError(t, err)
		require.Equal(t, 4, c.Rows)
		require.Equal(t, 7, c.Columns)
		require.Equal(t, 3, c.HandSize)
		require.True(t, c.Variant)
		require.Equal(t, []string{"random", "rowscore>fillfirst"}, c.Strategies)
		require.Equal(t, int64(99), c.Seed)
		require.Equal(t, "variant-5", c.Rules().Name())
	})

	invalid := []struct {
		name  string
		key   string
		value string
	}{
		{"even columns", "QB_COLUMNS", "4"},
		{"no rows", "QB_ROWS", "0"},
		{"oversized hand", "QB_HAND_SIZE", "6"},
		{"no games", "QB_GAMES", "0"},
		{"no turns", "QB_MAX_TURNS", "-1"},
		{"a single strategy", "QB_STRATEGIES", "control"},
		{"an unknown strategy", "QB_STRATEGIES", "control;alphazero"},
		{"an unknown log level", "QB_LOG_LEVEL", "loud"},
		{"a malformed number", "QB_ROWS", "three"},
	}
	for _, tc := range invalid {
		t.Run("rejecting "+tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()

			require.Error(t, err, "%s=%s should be rejected", tc.key, tc.value)
		})
	}
}

func TestDeckFollowsRules(t *testing.T) {
	for _, variant := range []bool{false, true} {
		c := Config{Variant: variant}
		rules := c.Rules()
		for _, card := range c.Deck() {
			require.Equal(t, rules.PatternSize(), card.Size(), "%s should fit %s", card.Name(), rules.Name())
		}
	}
}

func TestSetupLogging(t *testing.T) {
	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	Config{LogLevel: "warn"}.SetupLogging()

	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
