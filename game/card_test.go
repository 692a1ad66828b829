package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	standard := NewStandardRules()

	t.Run("building a valid card", func(t *testing.T) {
		c := testCard(t, standard, "Scout", 1, 2, crossPattern...)

		require.Equal(t, "Scout", c.Name())
		require.Equal(t, 1, c.Cost())
		require.Equal(t, 2, c.Value())
		require.Equal(t, 5, c.Size())
		require.Equal(t, Center, c.At(2, 2))
	})

	t.Run("listing effects skips the center and empty cells", func(t *testing.T) {
		c := testCard(t, standard, "Scout", 1, 2, crossPattern...)

		require.Equal(t, []Effect{
			{DRow: -1, DCol: 0, Symbol: Influence},
			{DRow: 0, DCol: -1, Symbol: Influence},
			{DRow: 0, DCol: 1, Symbol: Influence},
			{DRow: 1, DCol: 0, Symbol: Influence},
		}, c.Effects(), "Effects should be relative to the center in row-major order")
	})

	t.Run("card does not alias the input pattern", func(t *testing.T) {
		pattern, err := Pattern(crossPattern...)
		require.NoError(t, err)
		c, err := NewCard("Scout", 1, 1, pattern, standard)
		require.NoError(t, err)

		pattern[1][2] = Empty

		require.Equal(t, Influence, c.At(1, 2), "Mutating the input should not change the card")
	})

	rejected := []struct {
		name  string
		card  string
		cost  int
		value int
		rows  []string
	}{
		{"empty name", " ", 1, 1, blankPattern},
		{"cost below range", "A", 0, 1, blankPattern},
		{"cost above range", "A", 4, 1, blankPattern},
		{"non-positive value", "A", 1, 0, blankPattern},
		{"too few rows", "A", 1, 1, blankPattern[:4]},
		{"short row", "A", 1, 1, []string{"XXXXX", "XXXX", "XXCXX", "XXXXX", "XXXXX"}},
		{"missing center", "A", 1, 1, []string{"XXXXX", "XXXXX", "XXIXX", "XXXXX", "XXXXX"}},
		{"duplicate center", "A", 1, 1, []string{"XXXXX", "XCXXX", "XXCXX", "XXXXX", "XXXXX"}},
		{"misplaced center", "A", 1, 1, []string{"XXXXX", "XCXXX", "XXXXX", "XXXXX", "XXXXX"}},
		{"variant symbol in standard rules", "A", 1, 1, []string{"XXXXX", "XUXXX", "XXCXX", "XXXXX", "XXXXX"}},
	}
	for _, tc := range rejected {
		t.Run("rejecting "+tc.name, func(t *testing.T) {
			pattern, err := Pattern(tc.rows...)
			require.NoError(t, err)

			_, err = NewCard(tc.card, tc.cost, tc.value, pattern, standard)

			require.ErrorIs(t, err, ErrInvalidCard)
		})
	}

	t.Run("variant rules allow upgrade and devalue", func(t *testing.T) {
		variant, err := NewVariantRules(5)
		require.NoError(t, err)

		c := testCard(t, variant, "Hexer", 1, 1,
			"XXXXX",
			"XUXXX",
			"XXCDX",
			"XXXXX",
			"XXXXX")

		require.Len(t, c.Effects(), 2)
	})

	t.Run("variant rules with a larger pattern", func(t *testing.T) {
		variant, err := NewVariantRules(7)
		require.NoError(t, err)

		c := testCard(t, variant, "Far", 2, 2,
			"IXXXXXX",
			"XXXXXXX",
			"XXXXXXX",
			"XXXCXXX",
			"XXXXXXX",
			"XXXXXXX",
			"XXXXXXD")

		require.Equal(t, []Effect{
			{DRow: -3, DCol: -3, Symbol: Influence},
			{DRow: 3, DCol: 3, Symbol: Devalue},
		}, c.Effects())

		_, err = NewCard("Small", 1, 1, mustPattern(t, blankPattern), variant)
		require.ErrorIs(t, err, ErrInvalidCard, "A 5x5 pattern should not satisfy 7x7 rules")
	})
}

func mustPattern(t *testing.T, rows []string) [][]Symbol {
	t.Helper()
	p, err := Pattern(rows...)
	require.NoError(t, err)
	return p
}

func TestPattern(t *testing.T) {
	t.Run("parsing every symbol", func(t *testing.T) {
		p, err := Pattern("XCIUD")
		require.NoError(t, err)
		require.Equal(t, [][]Symbol{{Empty, Center, Influence, Upgrade, Devalue}}, p)
	})

	t.Run("rejecting unknown symbols", func(t *testing.T) {
		_, err := Pattern("XX?XX")
		require.Error(t, err)
	})
}

func TestNewVariantRules(t *testing.T) {
	_, err := NewVariantRules(4)
	require.ErrorIs(t, err, ErrInvalidRules, "Even sizes have no center")

	_, err = NewVariantRules(3)
	require.ErrorIs(t, err, ErrInvalidRules, "Sizes below 5 are not allowed")
}

func TestBuiltInDecks(t *testing.T) {
	require.NotPanics(t, func() {
		require.Len(t, StandardDeck(), 15)
		require.Len(t, VariantDeck(), 15)
	}, "Built-in decks should only hold valid cards")
}
