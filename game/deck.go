package game

// StandardDeck is the built-in 15 card deck for StandardRules, in draw order.
func StandardDeck() []Card {
	r := NewStandardRules()
	return []Card{
		MustCard("Scout", 1, 1, r,
			"XXXXX",
			"XXIXX",
			"XICIX",
			"XXIXX",
			"XXXXX"),
		MustCard("Pikeman", 1, 2, r,
			"XXXXX",
			"XXXXX",
			"XXCIX",
			"XXXXX",
			"XXXXX"),
		MustCard("Archer", 1, 1, r,
			"XXXXX",
			"XXXIX",
			"XXCXX",
			"XXXIX",
			"XXXXX"),
		MustCard("Shieldbearer", 1, 3, r,
			"XXXXX",
			"XXXXX",
			"XXCXX",
			"XXXXX",
			"XXXXX"),
		MustCard("Runner", 1, 1, r,
			"XXXXX",
			"XXXXX",
			"XXCXI",
			"XXXXX",
			"XXXXX"),
		MustCard("Sentinel", 2, 3, r,
			"XXXXX",
			"XXIXX",
			"XXCIX",
			"XXIXX",
			"XXXXX"),
		MustCard("Lancer", 2, 2, r,
			"XXXXX",
			"XXXXX",
			"XXCII",
			"XXXXX",
			"XXXXX"),
		MustCard("Warden", 2, 4, r,
			"XXXXX",
			"XXIXX",
			"XXCXX",
			"XXIXX",
			"XXXXX"),
		MustCard("Skirmisher", 2, 2, r,
			"XXXXX",
			"XIXIX",
			"XXCXX",
			"XIXIX",
			"XXXXX"),
		MustCard("Herald", 2, 3, r,
			"XXIXX",
			"XXXXX",
			"XXCXX",
			"XXXXX",
			"XXIXX"),
		MustCard("Knight", 3, 5, r,
			"XXXXX",
			"XXIIX",
			"XXCIX",
			"XXIIX",
			"XXXXX"),
		MustCard("Captain", 3, 6, r,
			"XXXXX",
			"XIIIX",
			"XICIX",
			"XIIIX",
			"XXXXX"),
		MustCard("Giant", 3, 7, r,
			"XXXXX",
			"XXXXX",
			"XXCXX",
			"XXXIX",
			"XXXXX"),
		MustCard("Siege Tower", 3, 4, r,
			"XXXXX",
			"XXXXX",
			"IICII",
			"XXXXX",
			"XXXXX"),
		MustCard("Sovereign", 3, 8, r,
			"XXXXX",
			"XXXXX",
			"XXCXX",
			"XXXXX",
			"XXXXX"),
	}
}

// VariantDeck is a 15 card deck using upgrade and devalue, for 5x5 VariantRules.
func VariantDeck() []Card {
	r, err := NewVariantRules(StandardPatternSize)
	if err != nil {
		panic(err)
	}
	return []Card{
		MustCard("Scout", 1, 1, r,
			"XXXXX",
			"XXIXX",
			"XICIX",
			"XXIXX",
			"XXXXX"),
		MustCard("Hexer", 1, 1, r,
			"XXXXX",
			"XXXXX",
			"XXCDX",
			"XXXXX",
			"XXXXX"),
		MustCard("Squire", 1, 2, r,
			"XXXXX",
			"XXUXX",
			"XXCIX",
			"XXUXX",
			"XXXXX"),
		MustCard("Pikeman", 1, 2, r,
			"XXXXX",
			"XXXXX",
			"XXCIX",
			"XXXXX",
			"XXXXX"),
		MustCard("Bard", 1, 1, r,
			"XXXXX",
			"XUXUX",
			"XXCXX",
			"XUXUX",
			"XXXXX"),
		MustCard("Witch", 2, 2, r,
			"XXXXX",
			"XXXDX",
			"XXCDX",
			"XXXDX",
			"XXXXX"),
		MustCard("Sentinel", 2, 3, r,
			"XXXXX",
			"XXIXX",
			"XXCIX",
			"XXIXX",
			"XXXXX"),
		MustCard("Quartermaster", 2, 2, r,
			"XXXXX",
			"XUIUX",
			"XXCXX",
			"XUIUX",
			"XXXXX"),
		MustCard("Lancer", 2, 3, r,
			"XXXXX",
			"XXXXX",
			"XXCII",
			"XXXXX",
			"XXXXX"),
		MustCard("Saboteur", 2, 2, r,
			"XXXXX",
			"XXXXX",
			"XXCXD",
			"XXXXX",
			"XXXXX"),
		MustCard("Knight", 3, 5, r,
			"XXXXX",
			"XXIIX",
			"XXCIX",
			"XXIIX",
			"XXXXX"),
		MustCard("Plague Doctor", 3, 3, r,
			"XXXXX",
			"XDDDX",
			"XICDX",
			"XDDDX",
			"XXXXX"),
		MustCard("Banner Lord", 3, 4, r,
			"XXXXX",
			"XUUUX",
			"XUCIX",
			"XUUUX",
			"XXXXX"),
		MustCard("Giant", 3, 7, r,
			"XXXXX",
			"XXXXX",
			"XXCXX",
			"XXXIX",
			"XXXXX"),
		MustCard("Sovereign", 3, 8, r,
			"XXXXX",
			"XXXXX",
			"XXCXX",
			"XXXXX",
			"XXXXX"),
	}
}
