package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type CollectionDAO interface {
	Insert(ctx context.Context, collection dao.Collection) (dao.Collection, error)
	FindAll(ctx context.Context, conditions map[string]interface{}) ([]dao.Collection, error)
	Delete(ctx context.Context, id uint) (dao.Collection, error)
}

type CollectionRepository struct {
	dao CollectionDAO
}

func NewCollectionRepository(dao CollectionDAO) *CollectionRepository {
	return &CollectionRepository{
		dao: dao,
	}
}

func (r *CollectionRepository) Create(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	created, err := r.dao.Insert(ctx, dao.Collection{
		PlayerID: nullableID(collection.PlayerID),
		DeckID:   nullableID(collection.DeckID),
	})
	if err != nil {
		return domain.Collection{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CollectionRepository) FindAll(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error) {
	found, err := r.dao.FindAll(ctx, filterConditions(map[string]*uint{
		"collection_id": filter.CollectionID,
		"player_id":     filter.PlayerID,
		"deck_id":       filter.DeckID,
	}))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	collections := make([]domain.Collection, 0, len(found))
	for _, c := range found {
		collections = append(collections, r.daoToDomain(c))
	}

	return collections, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id uint) (domain.Collection, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *CollectionRepository) daoToDomain(c dao.Collection) domain.Collection {
	return domain.Collection{
		ID:       c.ID,
		PlayerID: derefID(c.PlayerID),
		Player:   playerRef(c.Player),
		DeckID:   derefID(c.DeckID),
		Deck:     deckRef(c.Deck),
	}
}
