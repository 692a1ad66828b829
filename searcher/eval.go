package searcher

import "queensblood/game"

// Evaluate scores a board from the perspective of player. Higher is better.
type Evaluate func(board *game.Board, player game.Owner) int

// ControlledCells counts the cells owned by player, by pawns or by a card.
func ControlledCells(board *game.Board, player game.Owner) int {
	return board.Owned(player)
}

// ControlDifference is the cells owned by player minus those of the opponent.
func ControlDifference(board *game.Board, player game.Owner) int {
	return board.Owned(player) - board.Owned(player.Opponent())
}

// RowAdvantage is player's total score minus the opponent's.
func RowAdvantage(board *game.Board, player game.Owner) int {
	return board.Score(player) - board.Score(player.Opponent())
}
