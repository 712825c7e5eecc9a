package domain

type Deck struct {
	ID   uint   `json:"deck_id"`
	Name string `json:"deck_name"`
}

type DeckChanges struct {
	Name *string
}

type DeckRef struct {
	Name string `json:"deck_name"`
}
