package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgDeckNameBlank      = "A deck must have a name and cannot be blank."
	msgDeckNameBlankStart = "A deck name cannot start with a blank."
)

type CreateDeckRequest struct {
	Name string `json:"deck_name" example:"Red Hybrid"`
}

func (req *CreateDeckRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required.Error(msgDeckNameBlank), notBlankStart(msgDeckNameBlankStart)),
	)
}

func (req *CreateDeckRequest) ToDomain() domain.Deck {
	return domain.Deck{Name: req.Name}
}

type UpdateDeckRequest struct {
	Name *string `json:"deck_name" example:"Red Hybrid"`
}

func (req *UpdateDeckRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty.Error(msgDeckNameBlank), notBlankStart(msgDeckNameBlankStart)),
	)
}

func (req *UpdateDeckRequest) ToDomain() domain.DeckChanges {
	return domain.DeckChanges{Name: req.Name}
}
