package domain

import "fmt"

// EventStatus is a plain attribute. Any value may replace any other.
type EventStatus string

const (
	EventStatusCancelled EventStatus = "Cancelled"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusOnhold    EventStatus = "Onhold"
	EventStatusPlanned   EventStatus = "Planned"
	EventStatusRunning   EventStatus = "Running"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusCancelled, EventStatusCompleted, EventStatusOnhold, EventStatusPlanned, EventStatusRunning:
		return true
	}

	return false
}

func (s EventStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown event status %q", string(s))
	}

	return []byte(s), nil
}

func EventStatuses() []interface{} {
	return []interface{}{EventStatusCancelled, EventStatusCompleted, EventStatusOnhold, EventStatusPlanned, EventStatusRunning}
}

type Event struct {
	ID          uint          `json:"event_id"`
	OrganiserID *uint         `json:"organiser_id"`
	Organiser   *OrganiserRef `json:"organiser"`
	VenueID     *uint         `json:"venue_id"`
	Venue       *VenueRef     `json:"venue"`
	Name        string        `json:"event_name"`
	PlayerCap   *int          `json:"player_cap"`
	Date        Date          `json:"event_date"`
	Details     *string       `json:"event_details"`
	Status      EventStatus   `json:"event_status"`
}

type EventFilter struct {
	EventID     *uint
	OrganiserID *uint
	VenueID     *uint
}

type EventRef struct {
	Name string `json:"event_name"`
}
