package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type DecklistDAO interface {
	Insert(ctx context.Context, decklist dao.Decklist) (dao.Decklist, error)
	FindAll(ctx context.Context, conditions map[string]interface{}) ([]dao.Decklist, error)
	Delete(ctx context.Context, deckID, cardID uint) error
}

type DecklistRepository struct {
	dao DecklistDAO
}

func NewDecklistRepository(dao DecklistDAO) *DecklistRepository {
	return &DecklistRepository{
		dao: dao,
	}
}

func (r *DecklistRepository) Create(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error) {
	created, err := r.dao.Insert(ctx, dao.Decklist{
		DeckID:   nullableID(decklist.DeckID),
		CardID:   nullableID(decklist.CardID),
		Quantity: decklist.Quantity,
	})
	if err != nil {
		return domain.Decklist{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DecklistRepository) FindAll(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error) {
	found, err := r.dao.FindAll(ctx, filterConditions(map[string]*uint{
		"deck_id": filter.DeckID,
		"card_id": filter.CardID,
	}))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	decklists := make([]domain.Decklist, 0, len(found))
	for _, d := range found {
		decklists = append(decklists, r.daoToDomain(d))
	}

	return decklists, nil
}

func (r *DecklistRepository) Delete(ctx context.Context, deckID, cardID uint) error {
	if err := r.dao.Delete(ctx, deckID, cardID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DecklistRepository) daoToDomain(d dao.Decklist) domain.Decklist {
	return domain.Decklist{
		DeckID:   derefID(d.DeckID),
		Deck:     deckRef(d.Deck),
		Quantity: d.Quantity,
		CardID:   derefID(d.CardID),
		Card:     cardRef(d.Card),
	}
}
