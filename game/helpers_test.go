package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var blankPattern = []string{
	"XXXXX",
	"XXXXX",
	"XXCXX",
	"XXXXX",
	"XXXXX",
}

var crossPattern = []string{
	"XXXXX",
	"XXIXX",
	"XICIX",
	"XXIXX",
	"XXXXX",
}

func testCard(t *testing.T, rules Rules, name string, cost, value int, rows ...string) Card {
	t.Helper()
	pattern, err := Pattern(rows...)
	require.NoError(t, err)
	c, err := NewCard(name, cost, value, pattern, rules)
	require.NoError(t, err)
	return c
}

func plainCard(t *testing.T, name string, cost, value int) Card {
	t.Helper()
	return testCard(t, NewStandardRules(), name, cost, value, blankPattern...)
}

// testPlayer builds a player with an exact hand and an empty draw queue.
func testPlayer(owner Owner, hand ...Card) *Player {
	return &Player{owner: owner, hand: hand}
}

func newTestEngine(t *testing.T, rows, cols int, red, blue []Card, options ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(rows, cols, testPlayer(Red, red...), testPlayer(Blue, blue...), options...)
	require.NoError(t, err)
	return e
}

func requireCell(t *testing.T, b *Board, row, col, pawns int, owner Owner) {
	t.Helper()
	cell, err := b.Cell(row, col)
	require.NoError(t, err)
	require.Equal(t, pawns, cell.Pawns(), "pawns at (%d,%d)", row, col)
	require.Equal(t, owner, cell.Owner(), "owner at (%d,%d)", row, col)
}
