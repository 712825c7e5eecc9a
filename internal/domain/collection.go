package domain

// Collection records that a player owns a deck. A (PlayerID, DeckID) pair appears at most once.
type Collection struct {
	ID       uint       `json:"collection_id"`
	PlayerID uint       `json:"player_id"`
	Player   *PlayerRef `json:"player"`
	DeckID   uint       `json:"deck_id"`
	Deck     *DeckRef   `json:"deck"`
}

type CollectionFilter struct {
	CollectionID *uint
	PlayerID     *uint
	DeckID       *uint
}
