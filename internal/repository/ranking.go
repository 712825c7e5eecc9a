package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type RankingDAO interface {
	Insert(ctx context.Context, ranking dao.Ranking) (dao.Ranking, error)
	FindAll(ctx context.Context, conditions map[string]interface{}) ([]dao.Ranking, error)
	Delete(ctx context.Context, playerID, eventID uint) error
}

type RankingRepository struct {
	dao RankingDAO
}

func NewRankingRepository(dao RankingDAO) *RankingRepository {
	return &RankingRepository{
		dao: dao,
	}
}

func (r *RankingRepository) Create(ctx context.Context, ranking domain.Ranking) (domain.Ranking, error) {
	created, err := r.dao.Insert(ctx, dao.Ranking{
		PlayerID:  nullableID(ranking.PlayerID),
		EventID:   nullableID(ranking.EventID),
		Placement: ranking.Placement,
		Points:    ranking.Points,
		Wins:      ranking.Wins,
		Losses:    ranking.Losses,
		Ties:      ranking.Ties,
	})
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RankingRepository) FindAll(ctx context.Context, filter domain.RankingFilter) ([]domain.Ranking, error) {
	found, err := r.dao.FindAll(ctx, filterConditions(map[string]*uint{
		"player_id": filter.PlayerID,
		"event_id":  filter.EventID,
	}))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	rankings := make([]domain.Ranking, 0, len(found))
	for _, rk := range found {
		rankings = append(rankings, r.daoToDomain(rk))
	}

	return rankings, nil
}

func (r *RankingRepository) Delete(ctx context.Context, playerID, eventID uint) error {
	if err := r.dao.Delete(ctx, playerID, eventID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RankingRepository) daoToDomain(rk dao.Ranking) domain.Ranking {
	return domain.Ranking{
		PlayerID:  derefID(rk.PlayerID),
		Player:    playerRef(rk.Player),
		EventID:   derefID(rk.EventID),
		Event:     eventRef(rk.Event),
		Placement: rk.Placement,
		Points:    rk.Points,
		Wins:      rk.Wins,
		Losses:    rk.Losses,
		Ties:      rk.Ties,
	}
}
