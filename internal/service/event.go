package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	Delete(ctx context.Context, id uint) (domain.Event, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.Status == "" {
		event.Status = domain.EventStatusPlanned
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

// DeleteEvent removes the event. Its registrations and rankings go with it.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) (domain.Event, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
