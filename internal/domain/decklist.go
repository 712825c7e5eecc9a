package domain

// Decklist is one card entry of a deck, identified by (DeckID, CardID).
type Decklist struct {
	DeckID   uint     `json:"deck_id"`
	Deck     *DeckRef `json:"deck"`
	Quantity int      `json:"card_quantity"`
	CardID   uint     `json:"card_id"`
	Card     *CardRef `json:"card"`
}

type DecklistFilter struct {
	DeckID *uint
	CardID *uint
}
