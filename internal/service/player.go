package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type PlayerRepository interface {
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	FindAll(ctx context.Context) ([]domain.Player, error)
	FindByID(ctx context.Context, id uint) (domain.Player, error)
	Update(ctx context.Context, id uint, changes domain.PlayerChanges) (domain.Player, error)
	Delete(ctx context.Context, id uint) (domain.Player, error)
}

type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{
		repo: repo,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayerService) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uint) (domain.Player, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id uint, changes domain.PlayerChanges) (domain.Player, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id uint) (domain.Player, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
