package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type CardRepository interface {
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	FindAll(ctx context.Context) ([]domain.Card, error)
	FindByID(ctx context.Context, id uint) (domain.Card, error)
	Update(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error)
	Delete(ctx context.Context, id uint) (domain.Card, error)
}

type CardService struct {
	repo CardRepository
}

func NewCardService(repo CardRepository) *CardService {
	return &CardService{
		repo: repo,
	}
}

func (s *CardService) CreateCard(ctx context.Context, card domain.Card) (domain.Card, error) {
	created, err := s.repo.Create(ctx, card)
	if err != nil {
		return domain.Card{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CardService) GetCards(ctx context.Context) ([]domain.Card, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *CardService) GetCard(ctx context.Context, id uint) (domain.Card, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *CardService) UpdateCard(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Card{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id uint) (domain.Card, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
