package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgEventNameBlankStart = "An event's name cannot start with a blank."
	msgEventStatus         = "Only valid statuses are allowed. Cancelled, Completed, Onhold, Planned, or Running."
)

type CreateEventRequest struct {
	OrganiserID *uint              `json:"organiser_id" example:"1"`
	VenueID     *uint              `json:"venue_id" example:"1"`
	Name        string             `json:"event_name" example:"Store Championship"`
	PlayerCap   *int               `json:"player_cap" example:"32"`
	Date        *string            `json:"event_date" format:"date" example:"2024-06-01"`
	Details     *string            `json:"event_details" example:"Swiss rounds, top 8 cut"`
	Status      domain.EventStatus `json:"event_status" example:"Planned"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, notBlankStart(msgEventNameBlankStart)),
		validation.Field(&req.PlayerCap, columnInt()),
		validation.Field(&req.Date, calendarDate()),
		validation.Field(&req.Status, validation.In(domain.EventStatuses()...).Error(msgEventStatus)),
	)
}

func (req *CreateEventRequest) ToDomain() domain.Event {
	return domain.Event{
		OrganiserID: req.OrganiserID,
		VenueID:     req.VenueID,
		Name:        req.Name,
		PlayerCap:   req.PlayerCap,
		Date:        toDate(req.Date),
		Details:     req.Details,
		Status:      req.Status,
	}
}

type EventFilter struct {
	EventID     *uint `form:"event_id"`
	OrganiserID *uint `form:"organiser_id"`
	VenueID     *uint `form:"venue_id"`
}

func (f EventFilter) ToDomain() domain.EventFilter {
	return domain.EventFilter{
		EventID:     f.EventID,
		OrganiserID: f.OrganiserID,
		VenueID:     f.VenueID,
	}
}
