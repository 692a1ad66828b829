package game

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Engine owns the board and both players and applies every turn transition.
// It is not safe for concurrent use; strategies work on clones instead.
type Engine struct {
	rules         Rules
	board         *Board
	players       [3]*Player // indexed by Owner
	active        Owner
	passes        int
	turns         int
	subscriptions []*subscription
	logger        zerolog.Logger
}

type subscription struct {
	Subscriber
}

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRules sets the rules that every card in play must satisfy.
func WithRules(rules Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// NewEngine sets up a game on a rows x cols board. The first column is seeded
// with one Red pawn per row and the last column with one Blue pawn per row;
// Red moves first.
func NewEngine(rows, cols int, red, blue *Player, options ...Option) (*Engine, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	e := &Engine{ // Default values
		rules:  NewStandardRules(),
		board:  board,
		active: Red,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}

	if red == nil || red.owner != Red {
		return nil, fmt.Errorf("%w: first player must be %s", ErrInvalidPlayer, Red)
	}
	if blue == nil || blue.owner != Blue {
		return nil, fmt.Errorf("%w: second player must be %s", ErrInvalidPlayer, Blue)
	}
	for _, p := range []*Player{red, blue} {
		for _, card := range append(slices.Clone(p.hand), p.queue...) {
			if err := validatePattern(card.name, card.pattern, e.rules); err != nil {
				return nil, fmt.Errorf("%s deck: %w", p.owner, err)
			}
		}
	}
	e.players[Red] = red
	e.players[Blue] = blue

	for row := 0; row < rows; row++ {
		board.at(row, 0).pawns, board.at(row, 0).owner = 1, Red
		board.at(row, cols-1).pawns, board.at(row, cols-1).owner = 1, Blue
	}
	return e, nil
}

func (e *Engine) Rules() Rules { return e.rules }
func (e *Engine) Rows() int    { return e.board.rows }
func (e *Engine) Cols() int    { return e.board.cols }

func (e *Engine) Cell(row, col int) (Cell, error) {
	return e.board.Cell(row, col)
}

func (e *Engine) ActivePlayer() Owner { return e.active }

// Hand returns a copy of o's hand, or nil if o is not a player.
func (e *Engine) Hand(o Owner) []Card {
	if !o.IsPlayer() {
		return nil
	}
	return e.players[o].Hand()
}

// Remaining is the size of o's draw queue.
func (e *Engine) Remaining(o Owner) int {
	if !o.IsPlayer() {
		return 0
	}
	return e.players[o].Remaining()
}

func (e *Engine) LegalMoves() []Move {
	return e.LegalMovesFor(e.active)
}

func (e *Engine) LegalMovesFor(o Owner) []Move {
	if e.IsGameOver() || !o.IsPlayer() {
		return nil
	}
	return LegalMoves(e.board, e.players[o].hand, o)
}

func (e *Engine) RowSubtotal(row int, o Owner) int {
	return e.board.RowSubtotal(row, o)
}

func (e *Engine) RowScore(row int) (red, blue int) {
	return e.board.RowScore(row)
}

func (e *Engine) Scores() (red, blue int) {
	return e.board.Scores()
}

func (e *Engine) ConsecutivePasses() int { return e.passes }

func (e *Engine) IsGameOver() bool {
	return e.passes >= PassesToEnd
}

// Winner is the side with the strictly higher total, or None on a tie.
func (e *Engine) Winner() Owner {
	return e.board.Result().Winner
}

func (e *Engine) Result() Result {
	return e.board.Result()
}

func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Subscribe registers s for turn and game-over notifications and returns a
// function that removes it again.
func (e *Engine) Subscribe(s Subscriber) (unsubscribe func()) {
	sub := &subscription{s}
	e.subscriptions = append(e.subscriptions, sub)
	return func() {
		if i := slices.Index(e.subscriptions, sub); i >= 0 {
			e.subscriptions = slices.Delete(e.subscriptions, i, i+1)
		}
	}
}

// PlaceCard plays the card at handIndex of the active player's hand on
// (row, col). On error nothing about the game has changed.
func (e *Engine) PlaceCard(row, col, handIndex int) error {
	if err := e.checkPlacement(row, col, handIndex); err != nil {
		e.logger.Debug().Err(err).Stringer("player", e.active).Msg("placement rejected")
		return err
	}

	player := e.players[e.active]
	card := player.hand[handIndex]
	player.remove(handIndex)
	e.board.place(row, col, card, e.active)
	e.passes = 0

	e.logger.Debug().
		Stringer("player", e.active).
		Str("card", card.name).
		Int("row", row).
		Int("col", col).
		Msg("card placed")

	e.endTurn()
	return nil
}

func (e *Engine) checkPlacement(row, col, handIndex int) error {
	if e.IsGameOver() {
		return ErrGameOver
	}
	if err := e.board.checkTarget(row, col, e.active); err != nil {
		return err
	}
	card, err := e.players[e.active].card(handIndex)
	if err != nil {
		return err
	}
	return checkCost(card, e.board.at(row, col).pawns)
}

// Pass gives up the active player's turn. The second consecutive pass ends
// the game.
func (e *Engine) Pass() error {
	if e.IsGameOver() {
		return ErrGameOver
	}
	e.passes++
	e.logger.Debug().Stringer("player", e.active).Int("passes", e.passes).Msg("pass")
	e.endTurn()
	return nil
}

// endTurn hands the turn to the opponent, who draws a card, and notifies
// subscribers.
func (e *Engine) endTurn() {
	e.active = e.active.Opponent()
	e.turns++

	if e.IsGameOver() {
		result := e.board.Result()
		e.logger.Info().
			Stringer("winner", result.Winner).
			Int("red", result.Red).
			Int("blue", result.Blue).
			Int("turns", e.turns).
			Msg("game over")
		for _, sub := range slices.Clone(e.subscriptions) {
			sub.GameOver(result)
		}
		return
	}

	e.players[e.active].draw()
	for _, sub := range slices.Clone(e.subscriptions) {
		sub.TurnChanged(e.active)
	}
}

// Turns is the number of completed turn transitions.
func (e *Engine) Turns() int { return e.turns }
