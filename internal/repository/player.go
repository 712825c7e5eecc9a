package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type PlayerDAO interface {
	Insert(ctx context.Context, player dao.Player) (dao.Player, error)
	FindAll(ctx context.Context) ([]dao.Player, error)
	FindByID(ctx context.Context, id uint) (dao.Player, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (dao.Player, error)
	Delete(ctx context.Context, id uint) (dao.Player, error)
}

type PlayerRepository struct {
	dao PlayerDAO
}

func NewPlayerRepository(dao PlayerDAO) *PlayerRepository {
	return &PlayerRepository{
		dao: dao,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := r.dao.Insert(ctx, dao.Player{
		Name: player.Name,
	})
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PlayerRepository) FindAll(ctx context.Context) ([]domain.Player, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	players := make([]domain.Player, 0, len(found))
	for _, p := range found {
		players = append(players, r.daoToDomain(p))
	}

	return players, nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id uint) (domain.Player, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PlayerRepository) Update(ctx context.Context, id uint, changes domain.PlayerChanges) (domain.Player, error) {
	columns := map[string]interface{}{}
	if changes.Name != nil {
		columns["player_name"] = *changes.Name
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id uint) (domain.Player, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *PlayerRepository) daoToDomain(p dao.Player) domain.Player {
	return domain.Player{
		ID:   p.ID,
		Name: p.Name,
	}
}

func playerRef(p *dao.Player) *domain.PlayerRef {
	if p == nil {
		return nil
	}

	return &domain.PlayerRef{Name: p.Name}
}
