package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type RankingRepository interface {
	Create(ctx context.Context, ranking domain.Ranking) (domain.Ranking, error)
	FindAll(ctx context.Context, filter domain.RankingFilter) ([]domain.Ranking, error)
	Delete(ctx context.Context, playerID, eventID uint) error
}

type RankingService struct {
	repo RankingRepository
}

func NewRankingService(repo RankingRepository) *RankingService {
	return &RankingService{
		repo: repo,
	}
}

func (s *RankingService) CreateRanking(ctx context.Context, ranking domain.Ranking) (domain.Ranking, error) {
	created, err := s.repo.Create(ctx, ranking)
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RankingService) GetRankings(ctx context.Context, filter domain.RankingFilter) ([]domain.Ranking, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *RankingService) DeleteRanking(ctx context.Context, playerID, eventID uint) error {
	if err := s.repo.Delete(ctx, playerID, eventID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
