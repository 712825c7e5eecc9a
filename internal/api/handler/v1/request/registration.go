package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type CreateRegistrationRequest struct {
	EventID        uint    `json:"event_id" example:"1"`
	PlayerID       uint    `json:"player_id" example:"1"`
	RegisteredDeck *uint   `json:"registered_deck" example:"1"`
	Date           *string `json:"registration_date" format:"date" example:"2024-05-20"`
}

func (req *CreateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, calendarDate()),
	)
}

func (req *CreateRegistrationRequest) ToDomain() domain.Registration {
	return domain.Registration{
		EventID:        req.EventID,
		PlayerID:       req.PlayerID,
		RegisteredDeck: req.RegisteredDeck,
		Date:           toDate(req.Date),
	}
}

type RegistrationFilter struct {
	EventID  *uint `form:"event_id"`
	PlayerID *uint `form:"player_id"`
}

func (f RegistrationFilter) ToDomain() domain.RegistrationFilter {
	return domain.RegistrationFilter{
		EventID:  f.EventID,
		PlayerID: f.PlayerID,
	}
}
