package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgPlayerNameBlank      = "A player needs a name and it cannot be blank."
	msgPlayerNameBlankStart = "A player's name cannot start with a blank."
)

type CreatePlayerRequest struct {
	Name string `json:"player_name" example:"Taichi"`
}

func (req *CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required.Error(msgPlayerNameBlank), notBlankStart(msgPlayerNameBlankStart)),
	)
}

func (req *CreatePlayerRequest) ToDomain() domain.Player {
	return domain.Player{Name: req.Name}
}

type UpdatePlayerRequest struct {
	Name *string `json:"player_name" example:"Taichi"`
}

func (req *UpdatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty.Error(msgPlayerNameBlank), notBlankStart(msgPlayerNameBlankStart)),
	)
}

func (req *UpdatePlayerRequest) ToDomain() domain.PlayerChanges {
	return domain.PlayerChanges{Name: req.Name}
}
