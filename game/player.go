package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// HandRatio caps the opening hand at a third of the deck.
const HandRatio = 3

// Player holds one side's hand, in draw order, and its remaining draw queue.
type Player struct {
	owner Owner
	hand  []Card
	queue []Card
}

// NewPlayer deals the first handSize cards of deck into the hand; the rest
// becomes the draw queue.
func NewPlayer(owner Owner, deck []Card, handSize int) (*Player, error) {
	if !owner.IsPlayer() {
		return nil, fmt.Errorf("%w: owner %s", ErrInvalidPlayer, owner)
	}
	if handSize < 1 || handSize > len(deck)/HandRatio {
		return nil, fmt.Errorf("%w: hand size %d must be between 1 and a third of the %d card deck", ErrInvalidPlayer, handSize, len(deck))
	}
	return &Player{
		owner: owner,
		hand:  slices.Clone(deck[:handSize]),
		queue: slices.Clone(deck[handSize:]),
	}, nil
}

func (p *Player) Owner() Owner { return p.owner }

// Hand returns a copy of the hand.
func (p *Player) Hand() []Card {
	return slices.Clone(p.hand)
}

func (p *Player) Remaining() int { return len(p.queue) }

func (p *Player) card(i int) (Card, error) {
	if i < 0 || i >= len(p.hand) {
		return Card{}, fmt.Errorf("%w: %d with %d cards in hand", ErrInvalidHandIndex, i, len(p.hand))
	}
	return p.hand[i], nil
}

func (p *Player) remove(i int) {
	p.hand = slices.Delete(p.hand, i, i+1)
}

// draw moves the front of the draw queue to the back of the hand.
func (p *Player) draw() bool {
	if len(p.queue) == 0 {
		return false
	}
	p.hand = append(p.hand, p.queue[0])
	p.queue = p.queue[1:]
	return true
}
