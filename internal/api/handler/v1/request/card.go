package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgCardNumberBlank      = "Card cannot have a blank number"
	msgCardNumberBlankStart = "Card number cannot start with a blank."
	msgCardNameBlank        = "Card cannot have a blank name."
	msgCardNameBlankStart   = "A card's name cannot start with a blank."
	msgCardType             = "Only valid card types are allowed. Digiegg, Digimon, Option, or Tamer."
	msgCardRarity           = "Only valid card rarities are allowed. Common, Uncommon, Rare, Super Rare, or Secret Rare."
)

type CreateCardRequest struct {
	Number string            `json:"card_number" example:"BT1-010"`
	Name   string            `json:"card_name" example:"Agumon"`
	Type   domain.CardType   `json:"card_type" example:"Digimon"`
	Rarity domain.CardRarity `json:"card_rarity" example:"Common"`
}

func (req *CreateCardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Number, validation.Required.Error(msgCardNumberBlank), notBlankStart(msgCardNumberBlankStart)),
		validation.Field(&req.Name, validation.Required.Error(msgCardNameBlank), notBlankStart(msgCardNameBlankStart)),
		validation.Field(&req.Type, validation.Required.Error(msgCardType), validation.In(domain.CardTypes()...).Error(msgCardType)),
		validation.Field(&req.Rarity, validation.Required.Error(msgCardRarity), validation.In(domain.CardRarities()...).Error(msgCardRarity)),
	)
}

func (req *CreateCardRequest) ToDomain() domain.Card {
	return domain.Card{
		Number: req.Number,
		Name:   req.Name,
		Type:   req.Type,
		Rarity: req.Rarity,
	}
}

// UpdateCardRequest carries a partial update. Absent fields keep their stored value.
type UpdateCardRequest struct {
	Number *string            `json:"card_number" example:"BT1-010"`
	Name   *string            `json:"card_name" example:"Agumon"`
	Type   *domain.CardType   `json:"card_type" example:"Digimon"`
	Rarity *domain.CardRarity `json:"card_rarity" example:"Rare"`
}

func (req *UpdateCardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Number, validation.NilOrNotEmpty.Error(msgCardNumberBlank), notBlankStart(msgCardNumberBlankStart)),
		validation.Field(&req.Name, validation.NilOrNotEmpty.Error(msgCardNameBlank), notBlankStart(msgCardNameBlankStart)),
		validation.Field(&req.Type, validation.NilOrNotEmpty.Error(msgCardType), validation.In(domain.CardTypes()...).Error(msgCardType)),
		validation.Field(&req.Rarity, validation.NilOrNotEmpty.Error(msgCardRarity), validation.In(domain.CardRarities()...).Error(msgCardRarity)),
	)
}

func (req *UpdateCardRequest) ToDomain() domain.CardChanges {
	return domain.CardChanges{
		Number: req.Number,
		Name:   req.Name,
		Type:   req.Type,
		Rarity: req.Rarity,
	}
}
