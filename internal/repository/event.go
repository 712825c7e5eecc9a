package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context, conditions map[string]interface{}) ([]dao.Event, error)
	Delete(ctx context.Context, id uint) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		OrganiserID: event.OrganiserID,
		VenueID:     event.VenueID,
		Name:        nullableString(event.Name),
		PlayerCap:   event.PlayerCap,
		Date:        event.Date.Time,
		Details:     event.Details,
		Status:      string(event.Status),
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, filterConditions(map[string]*uint{
		"event_id":     filter.EventID,
		"organiser_id": filter.OrganiserID,
		"venue_id":     filter.VenueID,
	}))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) (domain.Event, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		OrganiserID: e.OrganiserID,
		Organiser:   organiserRef(e.Organiser),
		VenueID:     e.VenueID,
		Venue:       venueRef(e.Venue),
		Name:        derefString(e.Name),
		PlayerCap:   e.PlayerCap,
		Date:        domain.NewDate(e.Date),
		Details:     e.Details,
		Status:      domain.EventStatus(e.Status),
	}
}

func eventRef(e *dao.Event) *domain.EventRef {
	if e == nil {
		return nil
	}

	return &domain.EventRef{Name: derefString(e.Name)}
}
