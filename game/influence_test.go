package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	dRow, dCol := mirror(-1, 2, Red)
	require.Equal(t, []int{-1, 2}, []int{dRow, dCol}, "Red offsets are used as is")

	dRow, dCol = mirror(-1, 2, Blue)
	require.Equal(t, []int{-1, -2}, []int{dRow, dCol}, "Blue offsets flip horizontally")
}

func TestInfluence(t *testing.T) {
	scout := func(t *testing.T) Card {
		return testCard(t, NewStandardRules(), "Scout", 1, 1, crossPattern...)
	}

	t.Run("claiming empty cells and reinforcing own pawns", func(t *testing.T) {
		b, err := NewBoard(3, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(1, 0, 1, Red))
		require.NoError(t, b.SetCellPawns(1, 1, 1, Red))

		b.place(1, 1, scout(t), Red)

		cell, err := b.Cell(1, 1)
		require.NoError(t, err)
		require.True(t, cell.HasCard())
		require.Equal(t, 0, cell.Pawns(), "Placing a card consumes the pawns")
		require.Equal(t, Red, cell.Owner())
		requireCell(t, b, 0, 1, 1, Red)
		requireCell(t, b, 1, 0, 2, Red)
		requireCell(t, b, 1, 2, 1, Red)
		requireCell(t, b, 2, 1, 1, Red)
	})

	t.Run("capping pawns at three", func(t *testing.T) {
		b, err := NewBoard(3, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(1, 0, 3, Red))
		require.NoError(t, b.SetCellPawns(1, 1, 1, Red))

		b.place(1, 1, scout(t), Red)

		requireCell(t, b, 1, 0, 3, Red)
	})

	t.Run("flipping opponent pawns without changing the count", func(t *testing.T) {
		b, err := NewBoard(3, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(1, 1, 1, Red))
		require.NoError(t, b.SetCellPawns(1, 2, 2, Blue))

		b.place(1, 1, scout(t), Red)

		requireCell(t, b, 1, 2, 2, Red)
	})

	t.Run("skipping cells that hold a card", func(t *testing.T) {
		b, err := NewBoard(3, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(1, 1, 1, Red))
		b.at(0, 1).place(plainCard(t, "Wall", 1, 2), Blue)

		b.place(1, 1, scout(t), Red)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.Equal(t, Blue, cell.Owner(), "Cards are never converted by influence")
		require.Equal(t, 0, cell.Pawns())
	})

	t.Run("skipping targets out of bounds", func(t *testing.T) {
		b, err := NewBoard(3, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 0, 1, Red))

		require.NotPanics(t, func() {
			b.place(0, 0, scout(t), Red)
		})

		requireCell(t, b, 0, 1, 1, Red)
		requireCell(t, b, 1, 0, 1, Red)
		require.Equal(t, 3, b.Owned(Red))
	})

	t.Run("mirroring columns for the second player", func(t *testing.T) {
		runner := testCard(t, NewStandardRules(), "Runner", 1, 1,
			"XXXXX",
			"XXXXX",
			"XXCXI",
			"XXXXX",
			"XXXXX")

		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 4, 1, Blue))

		b.place(0, 4, runner, Blue)

		requireCell(t, b, 0, 2, 1, Blue)
	})

	t.Run("the center never affects its own cell", func(t *testing.T) {
		b, err := NewBoard(1, 3)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 1, 2, Red))

		b.place(0, 1, plainCard(t, "Lone", 1, 4), Red)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.Equal(t, 0, cell.Pawns())
		require.Equal(t, 0, cell.Modifier())
		require.Equal(t, 1, b.Owned(Red), "Only the placed card should be owned")
	})
}

func TestModifiers(t *testing.T) {
	variant, err := NewVariantRules(5)
	require.NoError(t, err)

	upgrader := testCard(t, variant, "Bard", 1, 1,
		"XXXXX",
		"XXXXX",
		"XXCUX",
		"XXXXX",
		"XXXXX")
	hexer := testCard(t, variant, "Hexer", 1, 1,
		"XXXXX",
		"XXXXX",
		"XXCDX",
		"XXXXX",
		"XXXXX")

	t.Run("upgrading raises the value of a placed card", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		b.at(0, 1).place(plainCard(t, "Ally", 1, 2), Red)

		b.place(0, 0, upgrader, Red)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.Equal(t, 1, cell.Modifier())
		require.Equal(t, 3, cell.Value())
		require.Equal(t, 4, b.RowSubtotal(0, Red))
	})

	t.Run("modifiers do not touch pawns", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 1, 2, Blue))

		b.place(0, 0, hexer, Red)

		requireCell(t, b, 0, 1, 2, Blue)
		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.Equal(t, -1, cell.Modifier(), "The modifier waits for a future card")
	})

	t.Run("a card placed on a devalued cell takes the modifier", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 1, 1, Blue))
		b.place(0, 0, hexer, Red)

		b.place(0, 1, plainCard(t, "Victim", 1, 1), Blue)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.False(t, cell.HasCard(), "A card brought to zero should not stay on the board")
		require.Equal(t, 1, cell.Pawns(), "Pawns should equal the card cost")
		require.Equal(t, Blue, cell.Owner())
		require.Equal(t, 0, cell.Modifier())
		require.Zero(t, b.RowSubtotal(0, Blue))
	})

	t.Run("a stronger card placed on a devalued cell survives", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		require.NoError(t, b.SetCellPawns(0, 1, 1, Blue))
		b.place(0, 0, hexer, Red)

		b.place(0, 1, plainCard(t, "Tough", 1, 3), Blue)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.True(t, cell.HasCard())
		require.Equal(t, -1, cell.Modifier())
		require.Equal(t, 2, cell.Value())
	})

	t.Run("devaluing a card to zero replaces it with pawns", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		b.at(0, 1).place(plainCard(t, "Victim", 2, 1), Blue)

		b.place(0, 0, hexer, Red)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.False(t, cell.HasCard(), "The devalued card should be removed")
		require.Equal(t, 2, cell.Pawns(), "Pawns should equal the card cost")
		require.Equal(t, Blue, cell.Owner(), "The former owner keeps the cell")
		require.Equal(t, 0, cell.Modifier(), "The modifier should reset")
	})

	t.Run("devaluing a card above zero keeps it", func(t *testing.T) {
		b, err := NewBoard(1, 5)
		require.NoError(t, err)
		b.at(0, 1).place(plainCard(t, "Tough", 1, 3), Blue)

		b.place(0, 0, hexer, Red)

		cell, err := b.Cell(0, 1)
		require.NoError(t, err)
		require.True(t, cell.HasCard())
		require.Equal(t, 2, cell.Value())
	})

	t.Run("card value is floored at zero", func(t *testing.T) {
		c := plainCard(t, "Weak", 1, 1)
		cell := Cell{card: &c, owner: Red, modifier: -4}

		require.Equal(t, 0, cell.Value())
	})
}
