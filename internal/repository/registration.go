package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	FindAll(ctx context.Context, conditions map[string]interface{}) ([]dao.Registration, error)
	Delete(ctx context.Context, eventID, playerID uint) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, dao.Registration{
		EventID:        nullableID(registration.EventID),
		PlayerID:       nullableID(registration.PlayerID),
		RegisteredDeck: registration.RegisteredDeck,
		Date:           registration.Date.Time,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindAll(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	found, err := r.dao.FindAll(ctx, filterConditions(map[string]*uint{
		"event_id":  filter.EventID,
		"player_id": filter.PlayerID,
	}))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	registrations := make([]domain.Registration, 0, len(found))
	for _, reg := range found {
		registrations = append(registrations, r.daoToDomain(reg))
	}

	return registrations, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, eventID, playerID uint) error {
	if err := r.dao.Delete(ctx, eventID, playerID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	registration := domain.Registration{
		EventID:        derefID(reg.EventID),
		Event:          eventRef(reg.Event),
		PlayerID:       derefID(reg.PlayerID),
		Player:         playerRef(reg.Player),
		RegisteredDeck: reg.RegisteredDeck,
		Date:           domain.NewDate(reg.Date),
	}
	if reg.Collection != nil {
		registration.Deck = deckRef(reg.Collection.Deck)
	}

	return registration
}
