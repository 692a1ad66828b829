package game

import "errors"

// Move violations. A failed PlaceCard or Pass never changes the engine.
var (
	ErrGameOver          = errors.New("game is over")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrNoPawns           = errors.New("cell has no pawns")
	ErrNotOwner          = errors.New("cell is not owned by the active player")
	ErrCellOccupied      = errors.New("cell already holds a card")
	ErrInvalidHandIndex  = errors.New("invalid hand index")
	ErrInsufficientPawns = errors.New("not enough pawns to pay the card cost")
)

// Construction and precondition failures.
var (
	ErrInvalidCard   = errors.New("invalid card")
	ErrInvalidBoard  = errors.New("invalid board dimensions")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidPawns  = errors.New("invalid pawn count")
	ErrInvalidOwner  = errors.New("invalid owner")
	ErrInvalidRules  = errors.New("invalid rules")
)
