package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection domain.Collection) (domain.Collection, error)
	FindAll(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error)
	Delete(ctx context.Context, id uint) (domain.Collection, error)
}

type CollectionService struct {
	repo CollectionRepository
}

func NewCollectionService(repo CollectionRepository) *CollectionService {
	return &CollectionService{
		repo: repo,
	}
}

func (s *CollectionService) AddDeck(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	created, err := s.repo.Create(ctx, collection)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CollectionService) GetCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *CollectionService) RemoveDeck(ctx context.Context, id uint) (domain.Collection, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
