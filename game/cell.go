package game

import "queensblood/utils"

// Cell is one board slot. Owner is None iff the cell has no pawns and no card.
type Cell struct {
	pawns    int
	owner    Owner
	card     *Card
	modifier int
}

func (c Cell) Pawns() int    { return c.pawns }
func (c Cell) Owner() Owner  { return c.owner }
func (c Cell) Modifier() int { return c.modifier }
func (c Cell) HasCard() bool { return c.card != nil }

// Card returns the placed card, if any.
func (c Cell) Card() (Card, bool) {
	if c.card == nil {
		return Card{}, false
	}
	return *c.card, true
}

// IsEmpty reports a cell with neither pawns nor a card.
func (c Cell) IsEmpty() bool {
	return c.pawns == 0 && c.card == nil
}

// Value is the scoring value of the placed card, modifier included and floored at 0.
func (c Cell) Value() int {
	if c.card == nil {
		return 0
	}
	return utils.Max(c.card.value+c.modifier, 0)
}

// place puts card on the cell for owner; pawns are consumed.
func (c *Cell) place(card Card, owner Owner) {
	c.card = &card
	c.pawns = 0
	c.owner = owner
}

// influence applies one influence hit from player.
func (c *Cell) influence(player Owner) {
	switch {
	case c.IsEmpty():
		c.pawns = 1
		c.owner = player
	case c.owner == player:
		c.pawns = utils.Clamp(c.pawns+1, 1, MaxPawns)
	default:
		c.owner = player
	}
}

// reconcile replaces a card whose value has been devalued to nothing with
// pawns worth its cost, and reports whether it did so.
func (c *Cell) reconcile() bool {
	if c.card == nil || c.card.value+c.modifier > 0 {
		return false
	}
	c.pawns = c.card.cost
	c.card = nil
	c.modifier = 0
	return true
}
