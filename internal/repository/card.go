package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type CardDAO interface {
	Insert(ctx context.Context, card dao.Card) (dao.Card, error)
	FindAll(ctx context.Context) ([]dao.Card, error)
	FindByID(ctx context.Context, id uint) (dao.Card, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (dao.Card, error)
	Delete(ctx context.Context, id uint) (dao.Card, error)
}

type CardRepository struct {
	dao CardDAO
}

func NewCardRepository(dao CardDAO) *CardRepository {
	return &CardRepository{
		dao: dao,
	}
}

func (r *CardRepository) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	created, err := r.dao.Insert(ctx, dao.Card{
		Number: card.Number,
		Name:   card.Name,
		Type:   string(card.Type),
		Rarity: string(card.Rarity),
	})
	if err != nil {
		return domain.Card{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CardRepository) FindAll(ctx context.Context) ([]domain.Card, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	cards := make([]domain.Card, 0, len(found))
	for _, c := range found {
		cards = append(cards, r.daoToDomain(c))
	}

	return cards, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id uint) (domain.Card, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CardRepository) Update(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error) {
	columns := map[string]interface{}{}
	if changes.Number != nil {
		columns["card_number"] = *changes.Number
	}
	if changes.Name != nil {
		columns["card_name"] = *changes.Name
	}
	if changes.Type != nil {
		columns["card_type"] = string(*changes.Type)
	}
	if changes.Rarity != nil {
		columns["card_rarity"] = string(*changes.Rarity)
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Card{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CardRepository) Delete(ctx context.Context, id uint) (domain.Card, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *CardRepository) daoToDomain(c dao.Card) domain.Card {
	return domain.Card{
		ID:     c.ID,
		Number: c.Number,
		Name:   c.Name,
		Type:   domain.CardType(c.Type),
		Rarity: domain.CardRarity(c.Rarity),
	}
}

func cardRef(c *dao.Card) *domain.CardRef {
	if c == nil {
		return nil
	}

	return &domain.CardRef{
		Number: c.Number,
		Name:   c.Name,
	}
}
