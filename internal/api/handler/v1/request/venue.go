package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgVenueNameBlank      = "A venue needs a name and it cannot be blank."
	msgVenueNameBlankStart = "A venue's name cannot start with a blank."
)

type CreateVenueRequest struct {
	Name    string  `json:"venue_name" example:"Good Games Sydney"`
	Address *string `json:"venue_address" example:"1 George St, Sydney"`
	Number  *string `json:"venue_number" example:"0290000000"`
}

func (req *CreateVenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required.Error(msgVenueNameBlank), notBlankStart(msgVenueNameBlankStart)),
	)
}

func (req *CreateVenueRequest) ToDomain() domain.Venue {
	return domain.Venue{
		Name:    req.Name,
		Address: req.Address,
		Number:  req.Number,
	}
}

type UpdateVenueRequest struct {
	Name    *string `json:"venue_name" example:"Good Games Sydney"`
	Address *string `json:"venue_address" example:"1 George St, Sydney"`
	Number  *string `json:"venue_number" example:"0290000000"`
}

func (req *UpdateVenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty.Error(msgVenueNameBlank), notBlankStart(msgVenueNameBlankStart)),
	)
}

func (req *UpdateVenueRequest) ToDomain() domain.VenueChanges {
	return domain.VenueChanges{
		Name:    req.Name,
		Address: req.Address,
		Number:  req.Number,
	}
}
