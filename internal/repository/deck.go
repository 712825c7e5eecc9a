package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type DeckDAO interface {
	Insert(ctx context.Context, deck dao.Deck) (dao.Deck, error)
	FindAll(ctx context.Context) ([]dao.Deck, error)
	FindByID(ctx context.Context, id uint) (dao.Deck, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (dao.Deck, error)
	Delete(ctx context.Context, id uint) (dao.Deck, error)
}

type DeckRepository struct {
	dao DeckDAO
}

func NewDeckRepository(dao DeckDAO) *DeckRepository {
	return &DeckRepository{
		dao: dao,
	}
}

func (r *DeckRepository) Create(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	created, err := r.dao.Insert(ctx, dao.Deck{
		Name: deck.Name,
	})
	if err != nil {
		return domain.Deck{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DeckRepository) FindAll(ctx context.Context) ([]domain.Deck, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	decks := make([]domain.Deck, 0, len(found))
	for _, d := range found {
		decks = append(decks, r.daoToDomain(d))
	}

	return decks, nil
}

func (r *DeckRepository) FindByID(ctx context.Context, id uint) (domain.Deck, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DeckRepository) Update(ctx context.Context, id uint, changes domain.DeckChanges) (domain.Deck, error) {
	columns := map[string]interface{}{}
	if changes.Name != nil {
		columns["deck_name"] = *changes.Name
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DeckRepository) Delete(ctx context.Context, id uint) (domain.Deck, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *DeckRepository) daoToDomain(d dao.Deck) domain.Deck {
	return domain.Deck{
		ID:   d.ID,
		Name: d.Name,
	}
}

func deckRef(d *dao.Deck) *domain.DeckRef {
	if d == nil {
		return nil
	}

	return &domain.DeckRef{Name: d.Name}
}
