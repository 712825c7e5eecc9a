package domain

import "fmt"

type CardType string

const (
	CardTypeDigiegg CardType = "Digiegg"
	CardTypeDigimon CardType = "Digimon"
	CardTypeOption  CardType = "Option"
	CardTypeTamer   CardType = "Tamer"
)

func (t CardType) IsValid() bool {
	switch t {
	case CardTypeDigiegg, CardTypeDigimon, CardTypeOption, CardTypeTamer:
		return true
	}

	return false
}

func (t CardType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown card type %q", string(t))
	}

	return []byte(t), nil
}

// CardTypes returns every card type in declaration order.
func CardTypes() []interface{} {
	return []interface{}{CardTypeDigiegg, CardTypeDigimon, CardTypeOption, CardTypeTamer}
}

type CardRarity string

const (
	CardRarityCommon     CardRarity = "Common"
	CardRarityUncommon   CardRarity = "Uncommon"
	CardRarityRare       CardRarity = "Rare"
	CardRaritySuperRare  CardRarity = "SuperRare"
	CardRaritySecretRare CardRarity = "SecretRare"
)

func (r CardRarity) IsValid() bool {
	switch r {
	case CardRarityCommon, CardRarityUncommon, CardRarityRare, CardRaritySuperRare, CardRaritySecretRare:
		return true
	}

	return false
}

func (r CardRarity) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("unknown card rarity %q", string(r))
	}

	return []byte(r), nil
}

// CardRarities returns every card rarity in declaration order.
func CardRarities() []interface{} {
	return []interface{}{CardRarityCommon, CardRarityUncommon, CardRarityRare, CardRaritySuperRare, CardRaritySecretRare}
}

type Card struct {
	ID     uint       `json:"card_id"`
	Number string     `json:"card_number"`
	Name   string     `json:"card_name"`
	Type   CardType   `json:"card_type"`
	Rarity CardRarity `json:"card_rarity"`
}

// CardChanges holds the fields of a partial card update. Nil fields are left untouched.
type CardChanges struct {
	Number *string
	Name   *string
	Type   *CardType
	Rarity *CardRarity
}

type CardRef struct {
	Number string `json:"card_number"`
	Name   string `json:"card_name"`
}
