package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type DeckRepository interface {
	Create(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	FindAll(ctx context.Context) ([]domain.Deck, error)
	FindByID(ctx context.Context, id uint) (domain.Deck, error)
	Update(ctx context.Context, id uint, changes domain.DeckChanges) (domain.Deck, error)
	Delete(ctx context.Context, id uint) (domain.Deck, error)
}

type DeckService struct {
	repo DeckRepository
}

func NewDeckService(repo DeckRepository) *DeckService {
	return &DeckService{
		repo: repo,
	}
}

func (s *DeckService) CreateDeck(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	created, err := s.repo.Create(ctx, deck)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DeckService) GetDecks(ctx context.Context) ([]domain.Deck, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *DeckService) GetDeck(ctx context.Context, id uint) (domain.Deck, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *DeckService) UpdateDeck(ctx context.Context, id uint, changes domain.DeckChanges) (domain.Deck, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DeckService) DeleteDeck(ctx context.Context, id uint) (domain.Deck, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
