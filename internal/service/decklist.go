package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const defaultCardQuantity = 1

type DecklistRepository interface {
	Create(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error)
	FindAll(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error)
	Delete(ctx context.Context, deckID, cardID uint) error
}

type DecklistService struct {
	repo DecklistRepository
}

func NewDecklistService(repo DecklistRepository) *DecklistService {
	return &DecklistService{
		repo: repo,
	}
}

// AddCard puts a card into a deck. A zero quantity means the caller left it out.
func (s *DecklistService) AddCard(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error) {
	if decklist.Quantity == 0 {
		decklist.Quantity = defaultCardQuantity
	}

	created, err := s.repo.Create(ctx, decklist)
	if err != nil {
		return domain.Decklist{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DecklistService) GetDecklists(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *DecklistService) RemoveCard(ctx context.Context, deckID, cardID uint) error {
	if err := s.repo.Delete(ctx, deckID, cardID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
