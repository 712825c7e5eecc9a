package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgOrganiserNameBlank      = "An organiser needs a name and it cannot be blank."
	msgOrganiserNameBlankStart = "An organiser's name cannot start with a blank."
)

type CreateOrganiserRequest struct {
	Name   string  `json:"organiser_name" example:"Bandai"`
	Email  *string `json:"organiser_email" example:"events@bandai.example"`
	Number *string `json:"organiser_number" example:"0400000000"`
}

func (req *CreateOrganiserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required.Error(msgOrganiserNameBlank), notBlankStart(msgOrganiserNameBlankStart)),
		validation.Field(&req.Email, is.Email),
	)
}

func (req *CreateOrganiserRequest) ToDomain() domain.Organiser {
	return domain.Organiser{
		Name:   req.Name,
		Email:  req.Email,
		Number: req.Number,
	}
}

type UpdateOrganiserRequest struct {
	Name   *string `json:"organiser_name" example:"Bandai"`
	Email  *string `json:"organiser_email" example:"events@bandai.example"`
	Number *string `json:"organiser_number" example:"0400000000"`
}

func (req *UpdateOrganiserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty.Error(msgOrganiserNameBlank), notBlankStart(msgOrganiserNameBlankStart)),
		validation.Field(&req.Email, is.Email),
	)
}

func (req *UpdateOrganiserRequest) ToDomain() domain.OrganiserChanges {
	return domain.OrganiserChanges{
		Name:   req.Name,
		Email:  req.Email,
		Number: req.Number,
	}
}
