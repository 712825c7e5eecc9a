package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const msgCardQuantity = "At least 1 copy of this card needs to be added into the decklist."

type CreateDecklistRequest struct {
	DeckID   uint `json:"deck_id" example:"1"`
	CardID   uint `json:"card_id" example:"1"`
	Quantity *int `json:"card_quantity" example:"4"`
}

func (req *CreateDecklistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, atLeast(1, msgCardQuantity), columnInt()),
	)
}

// ToDomain leaves Quantity at zero when it was not sent.
func (req *CreateDecklistRequest) ToDomain() domain.Decklist {
	decklist := domain.Decklist{
		DeckID: req.DeckID,
		CardID: req.CardID,
	}
	if req.Quantity != nil {
		decklist.Quantity = *req.Quantity
	}

	return decklist
}

type DecklistFilter struct {
	DeckID *uint `form:"deck_id"`
	CardID *uint `form:"card_id"`
}

func (f DecklistFilter) ToDomain() domain.DecklistFilter {
	return domain.DecklistFilter{
		DeckID: f.DeckID,
		CardID: f.CardID,
	}
}
