package domain

// Registration signs a player up for an event. RegisteredDeck points at a
// collection entry and stays nil until the player picks a deck.
type Registration struct {
	EventID        uint       `json:"event_id"`
	Event          *EventRef  `json:"event"`
	PlayerID       uint       `json:"player_id"`
	Player         *PlayerRef `json:"player"`
	RegisteredDeck *uint      `json:"registered_deck"`
	Deck           *DeckRef   `json:"deck"`
	Date           Date       `json:"registration_date"`
}

type RegistrationFilter struct {
	EventID  *uint
	PlayerID *uint
}
