package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type VenueDAO interface {
	Insert(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindAll(ctx context.Context) ([]dao.Venue, error)
	FindByID(ctx context.Context, id uint) (dao.Venue, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (dao.Venue, error)
	Delete(ctx context.Context, id uint) (dao.Venue, error)
}

type VenueRepository struct {
	dao VenueDAO
}

func NewVenueRepository(dao VenueDAO) *VenueRepository {
	return &VenueRepository{
		dao: dao,
	}
}

func (r *VenueRepository) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.Insert(ctx, dao.Venue{
		Name:    venue.Name,
		Address: venue.Address,
		Number:  venue.Number,
	})
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VenueRepository) FindAll(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	venues := make([]domain.Venue, 0, len(found))
	for _, v := range found {
		venues = append(venues, r.daoToDomain(v))
	}

	return venues, nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VenueRepository) Update(ctx context.Context, id uint, changes domain.VenueChanges) (domain.Venue, error) {
	columns := map[string]interface{}{}
	if changes.Name != nil {
		columns["venue_name"] = *changes.Name
	}
	if changes.Address != nil {
		columns["venue_address"] = *changes.Address
	}
	if changes.Number != nil {
		columns["venue_number"] = *changes.Number
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uint) (domain.Venue, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *VenueRepository) daoToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:      v.ID,
		Name:    v.Name,
		Address: v.Address,
		Number:  v.Number,
	}
}

func venueRef(v *dao.Venue) *domain.VenueRef {
	if v == nil {
		return nil
	}

	return &domain.VenueRef{Name: v.Name}
}
